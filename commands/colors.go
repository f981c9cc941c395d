package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pwcheck/scoring"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
	cyan   = ansi.ColorFunc("cyan+b")
)

func colorize(label scoring.Label) string {
	switch label {
	case scoring.VeryWeak, scoring.Weak:
		return red(label.String())
	case scoring.Moderate:
		return yellow(label.String())
	case scoring.Strong:
		return green(label.String())
	default:
		return cyan(label.String())
	}
}
