package sniff

import "fmt"

type Kind int

const (
	CommonPassword Kind = iota
	AllDigits
	AllLetters
	RepeatedRun
	TooShort
	DictionaryWord
)

func (k Kind) String() string {
	switch k {
	case CommonPassword:
		return "common_password"
	case AllDigits:
		return "all_digits"
	case AllLetters:
		return "all_letters"
	case RepeatedRun:
		return "repeated_run"
	case TooShort:
		return "too_short"
	case DictionaryWord:
		return "dictionary_word"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Warning is a single weakness found in a password. Word is only set for
// DictionaryWord warnings.
type Warning struct {
	Kind    Kind
	Message string
	Word    string
}

func dictionaryWarning(word string) Warning {
	return Warning{
		Kind:    DictionaryWord,
		Message: fmt.Sprintf("Contains dictionary word: '%s'", word),
		Word:    word,
	}
}
