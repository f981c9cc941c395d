package entropy

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// Opinion is zxcvbn's rating of a password. It never feeds into the
// heuristic score.
type Opinion struct {
	Score     int // 0 (guessable) to 4 (very unguessable)
	Entropy   float64
	CrackTime string
}

func CrossCheck(password string, userInputs ...string) Opinion {
	result := zxcvbn.PasswordStrength(password, userInputs)

	return Opinion{
		Score:     result.Score,
		Entropy:   Round(result.Entropy),
		CrackTime: result.CrackTimeDisplay,
	}
}

// IsPasswordSuspect reports whether zxcvbn rates the password below
// threshold on its 0-4 scale.
func IsPasswordSuspect(password string, threshold int) bool {
	if password == "" {
		return true
	}
	return CrossCheck(password).Score < threshold
}
