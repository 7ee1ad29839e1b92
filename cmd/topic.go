package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/workledger/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `wl topic [<topic>...]

  Shows documentation topics, the list of topics by default. "*" shows them
  all.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail("%v", err)
	}
	a, err := openApp()
	if err != nil {
		// the manual is readable without data.
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	defer a.Close()
	a.printMarkdown(doc)
	return subcommands.ExitSuccess
}
