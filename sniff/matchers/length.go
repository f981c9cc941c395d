package matchers

import "unicode/utf8"

type shorterMatcher struct {
	min int
}

// Shorter matches passwords with fewer than min runes.
func Shorter(min int) Matcher {
	return &shorterMatcher{
		min: min,
	}
}

func (m *shorterMatcher) Match(password string) bool {
	return utf8.RuneCountInString(password) < m.min
}
