package config_test

import (
	"io/ioutil"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pwcheck/config"
	"github.com/pivotal-cf/pwcheck/wordlists"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		It("reads both word lists", func() {
			c, err := config.Load([]byte(`
common_passwords:
- hunter2
- "123456"
dictionary_words: [cat, dog]
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(c).To(Equal(&config.Config{
				CommonPasswords: []string{"hunter2", "123456"},
				DictionaryWords: []string{"cat", "dog"},
			}))
		})

		It("rejects unknown keys", func() {
			_, err := config.Load([]byte("common_pasword: [x]\n"))
			Expect(err).To(HaveOccurred())
		})

		It("rejects malformed YAML", func() {
			_, err := config.Load([]byte("common_passwords: [x\n"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("LoadFile", func() {
		var path string

		BeforeEach(func() {
			f, err := ioutil.TempFile("", "pwcheck-config")
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			_, err = f.WriteString("dictionary_words: [kitten]\n")
			Expect(err).NotTo(HaveOccurred())

			path = f.Name()
		})

		AfterEach(func() {
			Expect(os.RemoveAll(path)).To(Succeed())
		})

		It("loads the file", func() {
			c, err := config.LoadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.DictionaryWords).To(Equal([]string{"kitten"}))
		})

		It("returns an error when the file is missing", func() {
			_, err := config.LoadFile(path + "-missing")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Validate", func() {
		It("accepts well formed lists", func() {
			c := &config.Config{CommonPasswords: []string{"pass word"}}
			Expect(c.Validate()).To(BeEmpty())
		})

		It("complains about a config that changes nothing", func() {
			c := &config.Config{}
			Expect(c.Validate()).To(ConsistOf(config.ErrEmpty))
		})

		It("reports every bad entry", func() {
			c := &config.Config{
				CommonPasswords: []string{"ok", "  "},
				DictionaryWords: []string{" cat", "dog", ""},
			}

			errs := c.Validate()
			Expect(errs).To(HaveLen(3))
			Expect(errs[0]).To(MatchError("common password 2 is blank"))
			Expect(errs[1]).To(MatchError(`dictionary word " cat" has surrounding whitespace`))
			Expect(errs[2]).To(MatchError("dictionary word 3 is blank"))
		})
	})

	Describe("Lists", func() {
		It("falls back to the built-in sets", func() {
			common, dictionary := (&config.Config{}).Lists()
			Expect(common).To(BeIdenticalTo(wordlists.CommonPasswords()))
			Expect(dictionary).To(BeIdenticalTo(wordlists.DictionaryWords()))
		})

		It("replaces a set when its list is given", func() {
			c := &config.Config{DictionaryWords: []string{"Kitten"}}
			common, dictionary := c.Lists()

			Expect(common).To(BeIdenticalTo(wordlists.CommonPasswords()))
			Expect(dictionary.Words()).To(Equal([]string{"kitten"}))
		})
	})
})
