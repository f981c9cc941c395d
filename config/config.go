package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/pwcheck/wordlists"
)

// Config overrides the built-in reference sets. An absent or empty list
// keeps the built-in set.
type Config struct {
	CommonPasswords []string `yaml:"common_passwords"`
	DictionaryWords []string `yaml:"dictionary_words"`
}

func Load(bs []byte) (*Config, error) {
	c := &Config{}
	err := yaml.UnmarshalStrict(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func LoadFile(path string) (*Config, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(bs)
}

func (c *Config) Validate() []error {
	var errs []error

	if c.Empty() {
		errs = append(errs, ErrEmpty)
	}

	errs = append(errs, validateWords("common password", c.CommonPasswords)...)
	errs = append(errs, validateWords("dictionary word", c.DictionaryWords)...)

	return errs
}

// Lists builds the reference sets, falling back to the built-in ones.
func (c *Config) Lists() (common, dictionary *wordlists.Set) {
	common = wordlists.CommonPasswords()
	if len(c.CommonPasswords) > 0 {
		common = wordlists.New(c.CommonPasswords...)
	}

	dictionary = wordlists.DictionaryWords()
	if len(c.DictionaryWords) > 0 {
		dictionary = wordlists.New(c.DictionaryWords...)
	}

	return common, dictionary
}

func validateWords(name string, words []string) []error {
	var errs []error

	for i, w := range words {
		switch {
		case strings.TrimSpace(w) == "":
			errs = append(errs, fmt.Errorf("%s %d is blank", name, i+1))
		case strings.TrimSpace(w) != w:
			errs = append(errs, fmt.Errorf("%s %q has surrounding whitespace", name, w))
		}
	}

	return errs
}

var ErrEmpty = errors.New("config file sets no word lists")

// Empty reports whether the config changes nothing.
func (c *Config) Empty() bool {
	return len(c.CommonPasswords) == 0 && len(c.DictionaryWords) == 0
}
