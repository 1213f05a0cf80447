package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stash/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `stx topic [-list] [<topic>...]

  Show documentation for the given topics, or the readme if none is given.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.Topics()
		if err != nil {
			return fail("could not list topics: %v", err)
		}
		for _, topic := range topics {
			title, err := docs.Title(topic)
			if err != nil {
				return fail("could not read topic %q: %v", topic, err)
			}
			fmt.Fprintf(stdout, "%-10s %s\n", topic, title)
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.Join(topics...)
	if err != nil {
		return fail("could not read doc: %v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
