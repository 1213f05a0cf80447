package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the assets held" }
func (*assetsCmd) Usage() string {
	return `stx assets

  Prints the symbols held, one per line, in the order they were first added.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStash()
	if err != nil {
		return fail("could not load stash: %v", err)
	}
	for _, a := range s.Assets() {
		fmt.Fprintln(stdout, a)
	}
	return subcommands.ExitSuccess
}
