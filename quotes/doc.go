// Package quotes gets market prices from the multi-quote page of a quote
// site.
//
// The page is HTML meant for humans, and its markup changes over time. Each
// known shape of its price table is described as a Layout: which cell holds
// which field. An Extractor tries the layouts in order and reads the page
// with the first one that matches.
//
// A Fetcher builds the page address for a set of symbols, gets it through a
// Transport, extracts the prices and checks that there is exactly one price
// per symbol.
package quotes
