package stash

import (
	"encoding/json"
	"slices"
)

// MarketPrice is one quote observed on the market.
type MarketPrice struct {
	Symbol   string  `json:"symbol"`
	Asset    string  `json:"asset"` // display name of the asset
	Level    float64 `json:"level"`
	Currency string  `json:"currency"`
	Epoch    uint64  `json:"epoch"` // seconds since the Unix epoch
}

// PriceList is the ordered batch of prices returned by a single fetch.
type PriceList []MarketPrice

// PriceMap indexes prices by symbol.
type PriceMap map[AssetSymbol]MarketPrice

// Map indexes the list by symbol. If a symbol appears more than once, the
// last price wins.
func (l PriceList) Map() PriceMap {
	m := make(PriceMap, len(l))
	for _, p := range l {
		m[ParseSymbol(p.Symbol)] = p
	}
	return m
}

// Symbols returns the distinct symbols of the list, sorted.
func (l PriceList) Symbols() []AssetSymbol {
	symbols := make([]AssetSymbol, 0, len(l))
	for _, p := range l {
		symbols = append(symbols, ParseSymbol(p.Symbol))
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}

// JSON returns the list as an indented JSON array.
func (l PriceList) JSON() ([]byte, error) {
	if l == nil {
		l = PriceList{}
	}
	return json.MarshalIndent(l, "", "  ")
}
