package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/pwcheck/commands"
)

func main() {
	parser := flags.NewParser(&commands.PWCheck, flags.HelpFlag|flags.PrintErrors)
	parser.NamespaceDelimiter = "-"
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}

	if parser.Active == nil {
		if err := commands.PWCheck.Check.Execute(nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
