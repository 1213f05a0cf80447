package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the stash with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `stx query <jsonpath>

  Evaluates the JSONPath expression against the stash file and prints the
  result as JSON. For instance:

    stx query '$.max_lot_id'
    stx query '$.lots.*.asset'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

// queryStash evaluates path against the JSON document of the stash.
func queryStash(path string) (any, error) {
	s, err := DecodeStash()
	if err != nil {
		return nil, fmt.Errorf("could not load stash: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("could not encode stash: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not decode stash: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage(f, "a single JSONPath expression is required")
	}
	jval, err := queryStash(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail("could not encode result: %v", err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
