package sniff

import (
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwcheck/log"
	"github.com/pivotal-cf/pwcheck/sniff/matchers"
	"github.com/pivotal-cf/pwcheck/wordlists"
)

const (
	minLength = 8
	maxRun    = 5
)

type Sniffer interface {
	Sniff(lager.Logger, string) []Warning
}

type check struct {
	kind    Kind
	message string
	matcher matchers.Matcher
}

type word struct {
	word    string
	matcher matchers.Matcher
}

type sniffer struct {
	checks []check
	words  []word
}

var defaultSniffer = NewDefaultSniffer()

// NewSniffer builds a sniffer that checks against the given reference sets.
// Dictionary words are checked in sorted order so output is reproducible.
func NewSniffer(common, dictionary *wordlists.Set) Sniffer {
	s := &sniffer{
		checks: []check{
			{CommonPassword, "Password is a very common password.", matchers.Exact(common)},
			{AllDigits, "Password contains only numbers.", matchers.AllDigits()},
			{AllLetters, "Password contains only letters.", matchers.AllLetters()},
			{RepeatedRun, "Password contains repeated characters.", matchers.Repeated(maxRun)},
			{TooShort, "Password is shorter than 8 characters.", matchers.Shorter(minLength)},
		},
	}

	for _, w := range dictionary.Words() {
		s.words = append(s.words, word{
			word:    w,
			matcher: matchers.Substring(w),
		})
	}

	return s
}

func NewDefaultSniffer() Sniffer {
	return NewSniffer(wordlists.CommonPasswords(), wordlists.DictionaryWords())
}

// DetectWeaknesses runs every check against password using the built-in
// reference sets.
func DetectWeaknesses(password string) []Warning {
	return defaultSniffer.Sniff(log.NewNullLogger(), password)
}

func (s *sniffer) Sniff(logger lager.Logger, password string) []Warning {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	warnings := []Warning{}

	for _, c := range s.checks {
		if c.matcher.Match(password) {
			logger.Debug("weakness-found", lager.Data{"kind": c.kind.String()})
			warnings = append(warnings, Warning{
				Kind:    c.kind,
				Message: c.message,
			})
		}
	}

	for _, w := range s.words {
		if w.matcher.Match(password) {
			logger.Debug("weakness-found", lager.Data{"kind": DictionaryWord.String(), "word": w.word})
			warnings = append(warnings, dictionaryWarning(w.word))
		}
	}

	logger.Debug("done", lager.Data{"warnings": len(warnings)})

	return warnings
}
