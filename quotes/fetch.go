package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/etnz/stash"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the quote site used when a Fetcher has no BaseURL.
const DefaultBaseURL = "https://finance.yahoo.com"

const (
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	accept    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"
)

// Transport retrieves the text of a page.
type Transport interface {
	Get(ctx context.Context, url string, header http.Header) (string, error)
}

// Fetcher looks up the market prices of a set of symbols.
//
// It does not retry and does not rate limit: that is left to the Transport
// or to the caller.
type Fetcher struct {
	Transport Transport // defaults to an HTTPTransport on http.DefaultClient
	BaseURL   string    // defaults to DefaultBaseURL
	Extractor Extractor
}

// normalize upper-cases, sorts and deduplicates symbols.
func normalize(symbols []stash.AssetSymbol) []stash.AssetSymbol {
	norm := make([]stash.AssetSymbol, len(symbols))
	for i, s := range symbols {
		norm[i] = stash.ParseSymbol(string(s))
	}
	symbols = norm
	slices.Sort(symbols)
	return slices.Compact(symbols)
}

// URL returns the address of the multi-quote page for symbols, which must
// already be normalized.
func (f *Fetcher) URL(symbols []stash.AssetSymbol) string {
	base := f.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	list := make([]string, 0, len(symbols))
	for _, s := range symbols {
		list = append(list, url.PathEscape(s.String()))
	}
	return fmt.Sprintf("%s/quotes/%s/view/v1?ncid=yahooproperties_portfolios_pbody", strings.TrimSuffix(base, "/"), strings.Join(list, ","))
}

// Fetch returns one price per distinct symbol, in page order.
//
// A page with fewer or more prices than requested symbols fails with a
// *CountMismatchError: a partial list would silently corrupt a valuation.
func (f *Fetcher) Fetch(ctx context.Context, symbols []stash.AssetSymbol) (stash.PriceList, error) {
	symbols = normalize(symbols)
	if len(symbols) == 0 {
		return stash.PriceList{}, nil
	}

	transport := f.Transport
	if transport == nil {
		transport = &HTTPTransport{}
	}
	addr := f.URL(symbols)
	header := make(http.Header)
	header.Set("Accept", accept)
	header.Set("User-Agent", userAgent)

	log.Debug().Str("url", addr).Int("symbols", len(symbols)).Msg("fetching quote page")
	text, err := transport.Get(ctx, addr, header)
	if err != nil {
		return nil, err
	}

	prices, err := f.Extractor.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("cannot extract prices from %s: %w", addr, err)
	}
	if len(prices) != len(symbols) {
		return nil, &CountMismatchError{
			Got:         len(prices),
			GotSymbols:  prices.Symbols(),
			Want:        len(symbols),
			WantSymbols: symbols,
			URL:         addr,
			Text:        text,
		}
	}
	return prices, nil
}

// CountMismatchError reports a quote page that does not hold exactly one
// price per requested symbol. It carries everything needed to diagnose a
// change in the page layout.
type CountMismatchError struct {
	Got         int
	GotSymbols  []stash.AssetSymbol // sorted
	Want        int
	WantSymbols []stash.AssetSymbol // sorted
	URL         string
	Text        string // raw page
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("length of price list does not match\nGot:\n%d %v\nExpected:\n%d %v\nUrl: %s\nText: %s",
		e.Got, e.GotSymbols, e.Want, e.WantSymbols, e.URL, e.Text)
}
