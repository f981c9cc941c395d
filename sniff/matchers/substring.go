package matchers

import "strings"

type substringMatcher struct {
	s string
}

// Substring matches passwords containing s, ignoring case.
func Substring(s string) Matcher {
	return &substringMatcher{
		s: strings.ToLower(s),
	}
}

func (m *substringMatcher) Match(password string) bool {
	if m.s == "" {
		return false
	}

	return strings.Contains(strings.ToLower(password), m.s)
}
