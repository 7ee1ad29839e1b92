// Command wl manages the projects and workers of a company.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/workledger/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// exits when run by the shell to complete the command line.
	cmd.Completion().Complete(commander.Name())

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
