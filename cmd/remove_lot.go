package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/stash"
	"github.com/google/subcommands"
)

type removeLotCmd struct{}

func (*removeLotCmd) Name() string     { return "remove-lot" }
func (*removeLotCmd) Synopsis() string { return "remove a lot from the stash" }
func (*removeLotCmd) Usage() string {
	return `stx remove-lot <id>

  Removes the lot with the given id. Its id is never reused.
`
}

func (c *removeLotCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeLotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage(f, "a lot id is required")
	}
	id, err := strconv.ParseUint(f.Arg(0), 10, 64)
	if err != nil {
		return usage(f, "%v", &stash.ParseError{Field: "lot id", Value: f.Arg(0), Err: err})
	}

	s, err := DecodeStash()
	if err != nil {
		return fail("could not load stash: %v", err)
	}
	lot, ok := s.RemoveLot(id)
	if !ok {
		fmt.Fprintf(stdout, "no lot %d, nothing removed\n", id)
		return subcommands.ExitSuccess
	}
	if err := EncodeStash(s); err != nil {
		return fail("could not save stash: %v", err)
	}
	fmt.Fprintf(stdout, "removed lot %d (%v %s), %d lots\n", id, lot.Size, lot.Asset, s.Len())
	return subcommands.ExitSuccess
}
