package stash

import (
	"errors"
	"strings"
	"unicode"
)

// AssetFilter selects lots by asset symbol.
//
// The zero value passes every lot.
type AssetFilter struct {
	symbol AssetSymbol
	set    bool
}

// AnyAsset returns a filter that passes every asset.
func AnyAsset() AssetFilter { return AssetFilter{} }

// OneAsset returns a filter that only passes the given symbol.
func OneAsset(symbol AssetSymbol) AssetFilter {
	return AssetFilter{symbol: ParseSymbol(string(symbol)), set: true}
}

// ParseAssetFilter builds an AssetFilter from an optional command line value.
// An empty value passes everything. A value naming more than one symbol (with
// a comma or an interior space) is rejected with a *ParseError.
func ParseAssetFilter(s string) (AssetFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AnyAsset(), nil
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		return AssetFilter{}, &ParseError{Field: "asset filter", Value: s, Err: errors.New("a filter selects a single symbol")}
	}
	return OneAsset(ParseSymbol(s)), nil
}

// Pass reports whether symbol is selected by the filter.
func (f AssetFilter) Pass(symbol AssetSymbol) bool { return !f.set || f.symbol == symbol }

// Symbol returns the selected symbol, if any.
func (f AssetFilter) Symbol() (AssetSymbol, bool) { return f.symbol, f.set }

func (f AssetFilter) String() string {
	if !f.set {
		return "*"
	}
	return f.symbol.String()
}

// HostFilter selects lots by custody host.
//
// The zero value passes every lot.
type HostFilter struct {
	host AssetHost
	set  bool
}

// AnyHost returns a filter that passes every host.
func AnyHost() HostFilter { return HostFilter{} }

// OneHost returns a filter that only passes the given host.
func OneHost(host AssetHost) HostFilter { return HostFilter{host: host, set: true} }

// ParseHostFilter builds a HostFilter from an optional command line value.
// Hosts are free text, so any non blank value is accepted.
func ParseHostFilter(s string) HostFilter {
	host := ParseHost(s)
	if host == "" {
		return AnyHost()
	}
	return OneHost(host)
}

// Pass reports whether host is selected by the filter.
func (f HostFilter) Pass(host AssetHost) bool { return !f.set || f.host == host }

// Host returns the selected host, if any.
func (f HostFilter) Host() (AssetHost, bool) { return f.host, f.set }

func (f HostFilter) String() string {
	if !f.set {
		return "*"
	}
	return f.host.String()
}
