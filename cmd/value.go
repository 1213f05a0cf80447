package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stash/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	asset string
	host  string
	total bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value the stash at market prices" }
func (*valueCmd) Usage() string {
	return `stx value [-asset <symbol>] [-host <host>] [-total]

  Fetches the market price of every asset held and prints the value of each
  lot and their total. Filters only restrict the lines displayed.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "only show lots of this symbol")
	f.StringVar(&c.host, "host", "", "only show lots held by this host")
	f.BoolVar(&c.total, "total", false, "only print the total value")
}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	af, hf, err := filters(c.asset, c.host)
	if err != nil {
		return usage(f, "%v", err)
	}

	s, err := DecodeStash()
	if err != nil {
		return fail("could not load stash: %v", err)
	}
	assets := s.Assets()
	if len(assets) == 0 {
		fmt.Fprintln(stdout, "The stash is empty.")
		return subcommands.ExitSuccess
	}

	prices, err := newFetcher().Fetch(ctx, assets)
	if err != nil {
		return fail("could not fetch prices: %v", err)
	}
	log.Debug().Int("prices", len(prices)).Msg("prices fetched")

	v, err := s.Valuation(prices.Map())
	if err != nil {
		return fail("could not value the stash: %v", err)
	}
	v = v.Filter(af, hf)

	if c.total {
		fmt.Fprintln(stdout, renderer.TotalText(v))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ValuationMarkdown(v))
	return subcommands.ExitSuccess
}
