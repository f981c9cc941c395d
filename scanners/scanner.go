package scanners

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"
)

// MaxLineSize is the longest line a Scanner accepts, in bytes.
const MaxLineSize = 64 * 1024

var ErrNoInput = errors.New("no input")

type Scanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

// New reads passwords one per line from r. path only labels the lines.
func New(r io.Reader, path string) *Scanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	return &Scanner{
		path:         path,
		bufioScanner: bufioScanner,
	}
}

func (s *Scanner) Scan(logger lager.Logger) bool {
	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		s.err = fmt.Errorf("%s:%d: %w", s.path, s.lineNumber+1, err)
		logger.Session("line-scanner").Error("bufio-error", s.err)
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *Scanner) Line(logger lager.Logger) *Line {
	content := make([]byte, len(s.bufioScanner.Bytes()))
	copy(content, s.bufioScanner.Bytes())

	return &Line{
		Path:       s.path,
		LineNumber: s.lineNumber,
		Content:    content,
	}
}

func (s *Scanner) Err() error {
	return s.err
}

// ReadLine reads a single line from r, dropping the line terminator and
// nothing else. It returns ErrNoInput if r is exhausted before any byte is
// read.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", ErrNoInput
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
