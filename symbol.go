package stash

import "strings"

// AssetSymbol is a ticker symbol, always upper case.
//
// Symbols compare, sort and hash as plain strings, so two symbols parsed from
// "aapl" and "AAPL" are equal.
type AssetSymbol string

// ParseSymbol converts any text into an AssetSymbol. It never fails: the empty
// string is a valid, if useless, symbol.
func ParseSymbol(s string) AssetSymbol { return AssetSymbol(strings.ToUpper(s)) }

// ParseSymbols parses every string in ss.
func ParseSymbols(ss ...string) []AssetSymbol {
	symbols := make([]AssetSymbol, 0, len(ss))
	for _, s := range ss {
		symbols = append(symbols, ParseSymbol(s))
	}
	return symbols
}

func (s AssetSymbol) String() string { return string(s) }

// DefaultHost is the custody host used when none is given.
const DefaultHost AssetHost = "Left cheek"

// AssetHost is a free text label naming where, or with whom, a lot is held.
type AssetHost string

// ParseHost converts text into an AssetHost by trimming the surrounding white
// spaces. Interior content is kept as is.
func ParseHost(s string) AssetHost { return AssetHost(strings.TrimSpace(s)) }

func (h AssetHost) String() string { return string(h) }
