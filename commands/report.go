package commands

import (
	"fmt"
	"io"

	"github.com/pivotal-cf/pwcheck/entropy"
	"github.com/pivotal-cf/pwcheck/scoring"
)

// Report is everything the check command prints about one password.
type Report struct {
	Breakdown  scoring.Breakdown
	Label      scoring.Label
	CrossCheck *entropy.Opinion
}

func NewReport(breakdown scoring.Breakdown) Report {
	return Report{
		Breakdown: breakdown,
		Label:     scoring.LabelFor(breakdown.Total),
	}
}

func (r Report) Render(w io.Writer, explain bool) {
	b := r.Breakdown

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Results ---")
	fmt.Fprintf(w, "Score: %d/100\n", b.Total)
	fmt.Fprintf(w, "Strength: %s\n", colorize(r.Label))
	fmt.Fprintf(w, "Entropy: %.2f bits\n", b.Entropy)

	if explain {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Breakdown:")
		fmt.Fprintf(w, "  entropy tier  %+d\n", b.Base)
		fmt.Fprintf(w, "  variety       %+d\n", b.Variety)
		fmt.Fprintf(w, "  length        %+d\n", b.Length)
		fmt.Fprintf(w, "  penalties     %+d\n", -b.Penalty)
	}

	if r.CrossCheck != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "zxcvbn: %d/4, %.2f bits (crack time: %s)\n", r.CrossCheck.Score, r.CrossCheck.Entropy, r.CrossCheck.CrackTime)
	}

	if len(b.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Weaknesses detected:")
		for _, warning := range b.Warnings {
			fmt.Fprintf(w, "- %s\n", warning.Message)
		}
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No major weaknesses found.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done.")
}
