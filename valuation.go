package stash

import "errors"

// Valuation is the detailed market value of a stash.
type Valuation struct {
	Lines []ValuationLine
	Total float64
}

// ValuationLine is the market value of a single lot.
type ValuationLine struct {
	LotEntry
	Price MarketPrice
	Value float64
}

// Valuation values every lot against prices, with the same all or nothing
// rule as Value.
func (s *Stash) Valuation(prices PriceMap) (Valuation, error) {
	var v Valuation
	for id, lot := range s.All() {
		value, err := lot.Value(prices)
		if err != nil {
			var mp *MissingPriceError
			if errors.As(err, &mp) {
				mp.LotID = id
			}
			return Valuation{}, err
		}
		v.Lines = append(v.Lines, ValuationLine{
			LotEntry: LotEntry{ID: id, Lot: lot},
			Price:    prices[lot.Asset],
			Value:    value,
		})
		v.Total += value
	}
	return v, nil
}

// Filter returns the lines of v selected by af and hf, with their own total.
func (v Valuation) Filter(af AssetFilter, hf HostFilter) Valuation {
	var f Valuation
	for _, line := range v.Lines {
		if af.Pass(line.Lot.Asset) && hf.Pass(line.Lot.Host) {
			f.Lines = append(f.Lines, line)
			f.Total += line.Value
		}
	}
	return f
}

// Currency returns the currency shared by every line, or "" if lines are
// quoted in different currencies.
func (v Valuation) Currency() string {
	var cur string
	for i, line := range v.Lines {
		if i == 0 {
			cur = line.Price.Currency
			continue
		}
		if line.Price.Currency != cur {
			return ""
		}
	}
	return cur
}
