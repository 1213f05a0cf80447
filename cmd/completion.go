package cmd

import (
	"flag"
	"strconv"

	"github.com/etnz/stash"
	"github.com/etnz/stash/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argPredictors predicts the positional arguments of commands that have
// some.
var argPredictors = map[string]complete.Predictor{
	"market":     complete.PredictFunc(predictAssets),
	"add-lot":    complete.PredictFunc(predictAssets),
	"remove-lot": complete.PredictFunc(predictLotIDs),
	"topic":      complete.PredictFunc(predictTopics),
}

// flagPredictors predicts the values of flags by name.
var flagPredictors = map[string]complete.Predictor{
	"asset":      complete.PredictFunc(predictAssets),
	"host":       complete.PredictFunc(predictHosts),
	"stash-file": predict.Files("*.json"),
}

// Completion returns the shell completion tree of the application: the
// global flags and every command of Commands with its own flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagSetPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		root.Sub[c.Name()] = commandCompletion(c)
	}
	return root
}

func commandCompletion(c subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	args, ok := argPredictors[c.Name()]
	if !ok {
		args = predict.Nothing
	}
	return &complete.Command{
		Flags: flagSetPredictors(f),
		Args:  args,
	}
}

func flagSetPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		p, ok := flagPredictors[fl.Name]
		if !ok {
			p = predict.Something
			if b, isBool := fl.Value.(interface{ IsBoolFlag() bool }); isBool && b.IsBoolFlag() {
				p = predict.Nothing
			}
		}
		flags[fl.Name] = p
	})
	return flags
}

// loadForCompletion reads the stash, silently returning nil on errors.
func loadForCompletion() *stash.Stash {
	s, err := DecodeStash()
	if err != nil {
		return nil
	}
	return s
}

func predictAssets(string) []string {
	s := loadForCompletion()
	if s == nil {
		return nil
	}
	var assets []string
	for _, a := range s.Assets() {
		assets = append(assets, a.String())
	}
	return assets
}

func predictHosts(string) []string {
	s := loadForCompletion()
	if s == nil {
		return nil
	}
	seen := make(map[stash.AssetHost]bool)
	var hosts []string
	for _, lot := range s.All() {
		if !seen[lot.Host] {
			seen[lot.Host] = true
			hosts = append(hosts, lot.Host.String())
		}
	}
	return hosts
}

func predictLotIDs(string) []string {
	s := loadForCompletion()
	if s == nil {
		return nil
	}
	var ids []string
	for id := range s.All() {
		ids = append(ids, strconv.FormatUint(id, 10))
	}
	return ids
}

func predictTopics(string) []string {
	topics, err := docs.Topics()
	if err != nil {
		return nil
	}
	return append(topics, "readme", "*")
}
