package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/stash"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type addLotCmd struct{}

func (*addLotCmd) Name() string     { return "add-lot" }
func (*addLotCmd) Synopsis() string { return "add a lot to the stash" }
func (*addLotCmd) Usage() string {
	return `stx add-lot <symbol> <size> <cost> [<host>]

  Records a new lot of <size> units of <symbol> bought for <cost>, held by
  <host> ("Left cheek" by default).
`
}

func (c *addLotCmd) SetFlags(f *flag.FlagSet) {}

// parseFloatArg parses a numeric argument.
func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &stash.ParseError{Field: name, Value: s, Err: err}
	}
	return v, nil
}

func (c *addLotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 3 || f.NArg() > 4 {
		return usage(f, "expected <symbol> <size> <cost> [<host>]")
	}
	symbol := stash.ParseSymbol(f.Arg(0))
	size, err := parseFloatArg("size", f.Arg(1))
	if err != nil {
		return usage(f, "%v", err)
	}
	cost, err := parseFloatArg("cost", f.Arg(2))
	if err != nil {
		return usage(f, "%v", err)
	}
	host := stash.DefaultHost
	if f.NArg() == 4 {
		host = stash.ParseHost(f.Arg(3))
	}

	s, err := DecodeStash()
	if err != nil {
		return fail("could not load stash: %v", err)
	}
	id := s.AddLot(symbol, size, cost, host)
	if err := EncodeStash(s); err != nil {
		return fail("could not save stash: %v", err)
	}
	log.Debug().Uint64("id", id).Msg("lot added")
	fmt.Fprintf(stdout, "%d lots\n", s.Len())
	return subcommands.ExitSuccess
}
