package commands

type PWCheckCommand struct {
	Check   CheckCommand   `command:"check" description:"Rate a password read from STDIN"`
	Batch   BatchCommand   `command:"batch" description:"Rate a list of passwords, one per line"`
	Version VersionCommand `command:"version" description:"Displays pwcheck version" alias:"V"`
}

var PWCheck PWCheckCommand
