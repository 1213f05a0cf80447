package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/stash/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	asset string
	host  string
	json  bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the lots in the stash" }
func (*lotsCmd) Usage() string {
	return `stx lots [-asset <symbol>] [-host <host>] [-json]

  Lists the lots in id order. When both filters are given, only lots
  matching both are listed.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "only list lots of this symbol")
	f.StringVar(&c.host, "host", "", "only list lots held by this host")
	f.BoolVar(&c.json, "json", false, "print one 'id: lot' JSON line per lot")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	af, hf, err := filters(c.asset, c.host)
	if err != nil {
		return usage(f, "%v", err)
	}

	s, err := DecodeStash()
	if err != nil {
		return fail("could not load stash: %v", err)
	}
	entries := s.Lots(af, hf)

	if !c.json {
		printMarkdown(renderer.LotsMarkdown(entries, af, hf))
		return subcommands.ExitSuccess
	}
	for _, e := range entries {
		line, err := json.Marshal(e.Lot)
		if err != nil {
			return fail("could not encode lot %d: %v", e.ID, err)
		}
		fmt.Fprintf(stdout, "%d: %s\n", e.ID, line)
	}
	return subcommands.ExitSuccess
}
