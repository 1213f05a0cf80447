// Package cmd implements the CLI application to manage a stash of lots.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/etnz/stash"
	"github.com/etnz/stash/quotes"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read as defaults of the global flags.
const (
	EnvStashFile = "STASH_FILE"
	EnvQuotesURL = "STASH_QUOTES_URL"
	EnvCache     = "STASH_CACHE"
	EnvVerbose   = "STASH_VERBOSE"
)

// Commands are all the subcommands of the application.
var Commands = []subcommands.Command{
	&marketCmd{},
	&lotsCmd{},
	&addLotCmd{},
	&removeLotCmd{},
	&assetsCmd{},
	&valueCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	stashFile = flag.String("stash-file", envOr(EnvStashFile, defaultStashFile()), "Path to the stash file (JSON format)")
	quotesURL = flag.String("quotes-url", envOr(EnvQuotesURL, quotes.DefaultBaseURL), "Base URL of the quote site")
	useCache  = flag.Bool("cache", envBool(EnvCache), "Keep quote pages on disk for the rest of the day")
	verbose   = flag.Bool("v", envBool(EnvVerbose), "Print debug logs")
)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// defaultStashFile returns the stash file in the user's config folder.
func defaultStashFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "main_stash.json"
	}
	return filepath.Join(dir, "stash_data", "main_stash.json")
}

// SetupLogging configures the global logger. It must be called after the
// flags have been parsed.
func SetupLogging() {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

// DecodeStash reads the stash from the app stash file.
func DecodeStash() (*stash.Stash, error) {
	return stash.ReadStashFile(*stashFile)
}

// EncodeStash writes the stash into the app stash file.
func EncodeStash(s *stash.Stash) error {
	return stash.WriteStashFile(*stashFile, s)
}

// newFetcher returns a quote Fetcher configured from the global flags.
func newFetcher() *quotes.Fetcher {
	client := new(http.Client)
	if *useCache {
		client.Transport = quotes.DailyCache(http.DefaultTransport, "")
	}
	return &quotes.Fetcher{
		Transport: &quotes.HTTPTransport{Client: client},
		BaseURL:   *quotesURL,
	}
}

// filters parses the -asset and -host flag values.
func filters(asset, host string) (stash.AssetFilter, stash.HostFilter, error) {
	af, err := stash.ParseAssetFilter(asset)
	if err != nil {
		return stash.AssetFilter{}, stash.HostFilter{}, err
	}
	return af, stash.ParseHostFilter(host), nil
}

// fail prints an error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usage prints a usage error and returns the usage status.
func usage(f *flag.FlagSet, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	f.Usage()
	return subcommands.ExitUsageError
}
