package wordlists

import (
	_ "embed"
	"sort"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsData string

//go:embed dictionary_words.txt
var dictionaryWordsData string

var (
	commonPasswords *Set
	dictionaryWords *Set
)

func init() {
	commonPasswords = Parse(commonPasswordsData)
	dictionaryWords = Parse(dictionaryWordsData)
}

// Set is an immutable, lowercased word set. It is safe for concurrent use.
type Set struct {
	members map[string]struct{}
	words   []string
}

// New builds a Set from words. Entries are lowercased and trimmed; blanks
// and duplicates are dropped.
func New(words ...string) *Set {
	s := &Set{
		members: make(map[string]struct{}, len(words)),
	}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, seen := s.members[w]; seen {
			continue
		}
		s.members[w] = struct{}{}
		s.words = append(s.words, w)
	}

	sort.Strings(s.words)

	return s
}

// Parse builds a Set from newline separated data.
func Parse(data string) *Set {
	return New(strings.Split(data, "\n")...)
}

// CommonPasswords returns the built-in set of known weak passwords.
func CommonPasswords() *Set {
	return commonPasswords
}

// DictionaryWords returns the built-in set of weak substrings.
func DictionaryWords() *Set {
	return dictionaryWords
}

func (s *Set) Contains(word string) bool {
	_, ok := s.members[word]
	return ok
}

// Words returns the members in sorted order.
func (s *Set) Words() []string {
	words := make([]string, len(s.words))
	copy(words, s.words)
	return words
}

func (s *Set) Len() int {
	return len(s.words)
}
