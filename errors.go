package stash

import "fmt"

// ParseError reports a value that could not be parsed.
type ParseError struct {
	Field string // what was being parsed, e.g. "price"
	Value string // the offending text
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingPriceError reports a held asset that has no price in the PriceMap
// used for a valuation.
type MissingPriceError struct {
	Asset AssetSymbol
	LotID uint64
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("no price for asset %s (lot %d)", e.Asset, e.LotID)
}
