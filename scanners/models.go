package scanners

import "strings"

type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

// Password is the line content without a trailing carriage return.
func (l Line) Password() string {
	return strings.TrimSuffix(string(l.Content), "\r")
}

func (l Line) Blank() bool {
	return l.Password() == ""
}
