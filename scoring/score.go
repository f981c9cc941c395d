package scoring

import (
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwcheck/entropy"
	"github.com/pivotal-cf/pwcheck/log"
	"github.com/pivotal-cf/pwcheck/sniff"
)

const (
	MinScore = 0
	MaxScore = 100

	varietyPoints  = 5
	lengthPoints   = 2
	maxLengthBonus = 20
	warningPenalty = 5
)

// Breakdown shows how a score was reached. Total is the final score.
type Breakdown struct {
	Entropy  float64
	Base     int
	Variety  int
	Length   int
	Penalty  int
	Warnings []sniff.Warning
	Total    int
}

type Scorer struct {
	sniffer sniff.Sniffer
}

var defaultScorer = NewScorer(sniff.NewDefaultSniffer())

func NewScorer(sniffer sniff.Sniffer) *Scorer {
	return &Scorer{
		sniffer: sniffer,
	}
}

// Score rates password from 0 to 100 using the built-in reference sets.
func Score(password string) int {
	return defaultScorer.Score(log.NewNullLogger(), password)
}

func (s *Scorer) Score(logger lager.Logger, password string) int {
	return s.Breakdown(logger, password).Total
}

func (s *Scorer) Breakdown(logger lager.Logger, password string) Breakdown {
	logger = logger.Session("score")

	b := Breakdown{
		Entropy:  entropy.Estimate(password),
		Variety:  entropy.Profile(password).Classes() * varietyPoints,
		Length:   min(utf8.RuneCountInString(password)*lengthPoints, maxLengthBonus),
		Warnings: s.sniffer.Sniff(logger, password),
	}
	b.Base = entropyTier(b.Entropy)
	b.Penalty = len(b.Warnings) * warningPenalty

	total := b.Base + b.Variety + b.Length - b.Penalty
	b.Total = min(max(total, MinScore), MaxScore)

	logger.Debug("scored", lager.Data{
		"entropy": b.Entropy,
		"base":    b.Base,
		"variety": b.Variety,
		"length":  b.Length,
		"penalty": b.Penalty,
		"total":   b.Total,
	})

	return b
}

func entropyTier(bits float64) int {
	switch {
	case bits < 28:
		return 10
	case bits < 36:
		return 25
	case bits < 60:
		return 50
	default:
		return 70
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
