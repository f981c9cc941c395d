package commands

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pwcheck/entropy"
	"github.com/pivotal-cf/pwcheck/mimetype"
	"github.com/pivotal-cf/pwcheck/scanners"
	"github.com/pivotal-cf/pwcheck/scoring"
)

type BatchCommand struct {
	CommonOptions

	File          string `short:"f" long:"file" description:"file with one password per line (defaults to STDIN)" value-name:"FILE"`
	MinScore      int    `long:"min-score" default:"50" description:"passwords scoring below this are reported as weak" value-name:"SCORE"`
	ShowPasswords bool   `long:"show-passwords" description:"allow passwords to be shown in output"`
	CrossCheckMin int    `long:"crosscheck-min" description:"also report passwords zxcvbn rates below this (1-4, 0 disables)" value-name:"SCORE"`
}

func (command *BatchCommand) Execute(args []string) error {
	logger := command.setup("batch", os.Stderr)

	if command.CrossCheckMin < 0 || command.CrossCheckMin > 4 {
		return fmt.Errorf("crosscheck-min must be between 0 and 4, got %d", command.CrossCheckMin)
	}

	scorer, err := command.buildScorer(logger)
	if err != nil {
		return err
	}

	cleaner := newCleanup()
	defer cleaner.run()

	var (
		input io.Reader = os.Stdin
		path            = "STDIN"
	)
	if command.File != "" {
		list, err := openPasswordList(logger, command.File)
		if err != nil {
			return err
		}
		cleaner.register(func() {
			if err := list.Close(); err != nil {
				logger.Error("close-failed", err)
			}
		})

		input = list
		path = command.File
	}

	counter := newWeakPasswordCounter(os.Stdout, command.MinScore, command.CrossCheckMin, command.ShowPasswords)
	err = command.rate(logger, scorer, scanners.New(input, path), counter)

	fmt.Println()
	fmt.Printf("Checked %d passwords, %d scored below %d.\n", counter.checked, counter.weak, command.MinScore)
	if command.CrossCheckMin > 0 {
		fmt.Printf("zxcvbn rated %d below %d/4.\n", counter.suspect, command.CrossCheckMin)
	}

	if counter.weak > 0 || counter.suspect > 0 {
		showWeakPasswordWarning()
		cleaner.exit(3)
	}

	return err
}

// openPasswordList opens a plain or gzipped password list. Other archive
// formats hold more than one file and are refused.
func openPasswordList(logger lager.Logger, filename string) (io.ReadCloser, error) {
	logger = logger.Session("open", lager.Data{"file": filename})

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	mime, isArchive := mimetype.IsArchive(filename)
	switch {
	case !isArchive:
		return f, nil
	case mime == mimetype.Gzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			logger.Error("gzip-failed", err)
			return nil, err
		}
		logger.Debug("inflating", lager.Data{"mime": mime})
		return &gzipFile{Reader: gz, file: f}, nil
	default:
		f.Close()
		return nil, fmt.Errorf("%s: unsupported archive type %s", filename, mime)
	}
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	var result error
	if err := g.Reader.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := g.file.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}

func (command *BatchCommand) rate(
	logger lager.Logger,
	scorer *scoring.Scorer,
	scanner *scanners.Scanner,
	counter *weakPasswordCounter,
) error {
	logger = logger.Session("rate")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line(logger)
		if line.Blank() {
			continue
		}

		score := scorer.Score(logger, line.Password())
		if err := counter.HandleResult(logger, *line, score); err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("%s scanning failed: %s\n", red("[FAILED]"), err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}

func newWeakPasswordCounter(out io.Writer, minScore, crossCheckMin int, showPasswords bool) *weakPasswordCounter {
	return &weakPasswordCounter{
		out:           out,
		minScore:      minScore,
		crossCheckMin: crossCheckMin,
		showPasswords: showPasswords,
	}
}

type weakPasswordCounter struct {
	out           io.Writer
	minScore      int
	crossCheckMin int
	showPasswords bool

	checked int
	weak    int
	suspect int
}

func (c *weakPasswordCounter) HandleResult(logger lager.Logger, line scanners.Line, score int) error {
	password := line.Password()
	suspect := c.crossCheckMin > 0 && entropy.IsPasswordSuspect(password, c.crossCheckMin)

	c.checked++
	if score < c.minScore {
		c.weak++
	}
	if suspect {
		c.suspect++
	}

	label := scoring.LabelFor(score)
	output := fmt.Sprintf("[%s] %s:%d score %d/100", colorize(label), line.Path, line.LineNumber, score)
	if suspect {
		output = output + fmt.Sprintf(" %s", yellow(fmt.Sprintf("(zxcvbn below %d/4)", c.crossCheckMin)))
	}
	if c.showPasswords {
		output = output + fmt.Sprintf(" [%s]", password)
	}

	logger.Debug("rated", lager.Data{"line": line.LineNumber, "score": score, "suspect": suspect, "checked": c.checked, "weak": c.weak})

	if _, err := fmt.Fprintln(c.out, output); err != nil {
		return fmt.Errorf("%s:%d: writing result: %w", line.Path, line.LineNumber, err)
	}

	return nil
}

func showWeakPasswordWarning() {
	fmt.Println()
	fmt.Println("Yikes! Some of these passwords are weak.")
	fmt.Println()
	fmt.Println("A few things make a password easier to guess:")
	fmt.Println()
	fmt.Println("1. Being on a list of well known passwords, or containing a")
	fmt.Println("   dictionary word.")
	fmt.Println()
	fmt.Println("2. Using a single kind of character, or repeating one character.")
	fmt.Println()
	fmt.Println("3. Being short. Length helps more than anything else.")
	fmt.Println()
	fmt.Println("Run `pwcheck check --explain` on a password to see how it was scored.")
}
