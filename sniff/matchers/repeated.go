package matchers

type repeatedMatcher struct {
	run int
}

// Repeated matches passwords where one rune occurs at least run times in
// a row.
func Repeated(run int) Matcher {
	return &repeatedMatcher{
		run: run,
	}
}

func (m *repeatedMatcher) Match(password string) bool {
	if m.run <= 1 {
		return password != ""
	}

	var previous rune
	current := 0

	for i, r := range password {
		if i > 0 && r == previous {
			current++
		} else {
			current = 1
		}
		previous = r

		if current >= m.run {
			return true
		}
	}

	return false
}
