package matchers

import "unicode"

type everyMatcher struct {
	class func(rune) bool
}

// Every matches non-empty passwords whose runes all satisfy class.
func Every(class func(rune) bool) Matcher {
	return &everyMatcher{
		class: class,
	}
}

func AllDigits() Matcher {
	return Every(unicode.IsDigit)
}

func AllLetters() Matcher {
	return Every(unicode.IsLetter)
}

func (m *everyMatcher) Match(password string) bool {
	if password == "" {
		return false
	}

	for _, r := range password {
		if !m.class(r) {
			return false
		}
	}

	return true
}
