package entropy

import (
	"math"
	"unicode/utf8"
)

const (
	lowerSize  = 26
	upperSize  = 26
	digitSize  = 10
	symbolSize = 32
)

// CharsetProfile records which character classes occur in a password.
// Classes are ASCII only; every other rune counts as a symbol.
type CharsetProfile struct {
	HasLower  bool
	HasUpper  bool
	HasDigit  bool
	HasSymbol bool
}

func Profile(password string) CharsetProfile {
	var p CharsetProfile

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			p.HasLower = true
		case r >= 'A' && r <= 'Z':
			p.HasUpper = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		default:
			p.HasSymbol = true
		}
	}

	return p
}

// Size is the estimated alphabet an attacker would have to search.
func (p CharsetProfile) Size() int {
	size := 0
	if p.HasLower {
		size += lowerSize
	}
	if p.HasUpper {
		size += upperSize
	}
	if p.HasDigit {
		size += digitSize
	}
	if p.HasSymbol {
		size += symbolSize
	}
	return size
}

// Classes is the number of character classes present.
func (p CharsetProfile) Classes() int {
	n := 0
	for _, present := range []bool{p.HasLower, p.HasUpper, p.HasDigit, p.HasSymbol} {
		if present {
			n++
		}
	}
	return n
}

// Estimate returns length * log2(charset size) in bits, rounded with Round.
// Length counts runes. A password with no recognised class (only the empty
// string) has zero entropy.
func Estimate(password string) float64 {
	size := Profile(password).Size()
	if size == 0 {
		return 0
	}

	length := utf8.RuneCountInString(password)

	return Round(float64(length) * math.Log2(float64(size)))
}

// Round rounds to two decimal places, halves away from zero.
func Round(x float64) float64 {
	return math.Round(x*100) / 100
}
