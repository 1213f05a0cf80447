package stash

import "time"

// Lot is one purchased quantity of a single asset.
type Lot struct {
	Asset AssetSymbol `json:"asset"`
	Size  float64     `json:"size"`
	Basis Basis       `json:"basis"`
	Host  AssetHost   `json:"host"`
}

// Basis records how a lot was acquired. It is set once when the lot is added
// and never changed afterwards.
type Basis struct {
	Cost  float64   `json:"cost"`
	Count float64   `json:"count"` // size of the lot at acquisition
	Time  time.Time `json:"time"`  // UTC
	Host  AssetHost `json:"host"`
}

// Value returns the market value of the lot.
func (l Lot) Value(prices PriceMap) (float64, error) {
	price, ok := prices[l.Asset]
	if !ok {
		return 0, &MissingPriceError{Asset: l.Asset}
	}
	return l.Size * price.Level, nil
}
