package matchers

import (
	"strings"

	"github.com/pivotal-cf/pwcheck/wordlists"
)

type exactMatcher struct {
	set *wordlists.Set
}

// Exact matches passwords that, lowercased, are members of set.
func Exact(set *wordlists.Set) Matcher {
	return &exactMatcher{
		set: set,
	}
}

func (m *exactMatcher) Match(password string) bool {
	return m.set.Contains(strings.ToLower(password))
}
