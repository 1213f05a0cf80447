package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/stash"
	"github.com/google/subcommands"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "print the market price of symbols" }
func (*marketCmd) Usage() string {
	return `stx market <symbol>[,<symbol>...]...

  Fetches the current price of every symbol and prints them as JSON.
  Symbols can be separated by commas or given as several arguments.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {}

// parseSymbolArgs splits comma separated symbol arguments.
func parseSymbolArgs(args []string) []stash.AssetSymbol {
	var symbols []stash.AssetSymbol
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, stash.ParseSymbol(s))
			}
		}
	}
	return symbols
}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols := parseSymbolArgs(f.Args())
	if len(symbols) == 0 {
		return usage(f, "at least one symbol is required")
	}

	prices, err := newFetcher().Fetch(ctx, symbols)
	if err != nil {
		return fail("could not fetch prices: %v", err)
	}
	out, err := prices.JSON()
	if err != nil {
		return fail("could not encode prices: %v", err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
