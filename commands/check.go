package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwcheck/entropy"
	"github.com/pivotal-cf/pwcheck/scanners"
)

type CheckCommand struct {
	CommonOptions

	Explain    bool `long:"explain" description:"show how the score was reached"`
	CrossCheck bool `long:"crosscheck" description:"also show zxcvbn's rating"`
}

func (command *CheckCommand) Execute(args []string) error {
	logger := command.setup("check", os.Stderr)

	scorer, err := command.buildScorer(logger)
	if err != nil {
		return err
	}

	fmt.Println("=== Password Strength Checker ===")
	fmt.Print("Enter password to check: ")

	password, err := scanners.ReadLine(os.Stdin)
	if err != nil {
		fmt.Println()
		logger.Error("read-failed", err)
		return err
	}

	logger = logger.Session("check", lager.Data{"length": len([]rune(password))})
	logger.Debug("starting")
	defer logger.Debug("done")

	report := NewReport(scorer.Breakdown(logger, password))
	if command.CrossCheck {
		opinion := entropy.CrossCheck(password)
		report.CrossCheck = &opinion
	}

	report.Render(os.Stdout, command.Explain)

	return nil
}
