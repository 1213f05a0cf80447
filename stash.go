package stash

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// Stash is the ledger of every lot held.
//
// Lots are indexed by an id allocated from a monotonic counter: ids are never
// reused, and removing a lot never decrements the counter.
type Stash struct {
	maxLotID uint64
	lots     map[uint64]Lot

	// Now is the clock used to timestamp new lots. It defaults to time.Now.
	Now func() time.Time
}

// NewStash creates an empty stash.
func NewStash() *Stash {
	return &Stash{lots: make(map[uint64]Lot)}
}

// LotEntry is a lot together with its id.
type LotEntry struct {
	ID  uint64
	Lot Lot
}

// MaxLotID returns the last allocated lot id.
func (s *Stash) MaxLotID() uint64 { return s.maxLotID }

// Len returns the number of lots in the stash.
func (s *Stash) Len() int { return len(s.lots) }

// Lot returns the lot with the given id.
func (s *Stash) Lot(id uint64) (Lot, bool) {
	lot, ok := s.lots[id]
	return lot, ok
}

func (s *Stash) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// AddLot records a new lot and returns its id.
//
// The asset is upper-cased. The basis is timestamped now and its count
// mirrors size. There is no validation on size or cost.
func (s *Stash) AddLot(asset AssetSymbol, size, cost float64, host AssetHost) uint64 {
	if s.lots == nil {
		s.lots = make(map[uint64]Lot)
	}
	lot := Lot{
		Asset: ParseSymbol(string(asset)),
		Size:  size,
		Basis: Basis{
			Cost:  cost,
			Count: size,
			Time:  s.now(),
			Host:  host,
		},
		Host: host,
	}
	id := s.maxLotID + 1
	s.lots[id] = lot
	s.maxLotID = id
	return id
}

// RemoveLot removes the lot with the given id and returns it. Removing an
// unknown id does nothing and returns false.
func (s *Stash) RemoveLot(id uint64) (Lot, bool) {
	lot, ok := s.lots[id]
	if !ok {
		return Lot{}, false
	}
	delete(s.lots, id)
	return lot, true
}

// All iterates over every lot in ascending id order.
func (s *Stash) All() iter.Seq2[uint64, Lot] {
	return func(yield func(uint64, Lot) bool) {
		for _, id := range slices.Sorted(maps.Keys(s.lots)) {
			if !yield(id, s.lots[id]) {
				return
			}
		}
	}
}

// Lots returns, in ascending id order, the lots whose asset passes af and
// whose host passes hf.
func (s *Stash) Lots(af AssetFilter, hf HostFilter) []LotEntry {
	var entries []LotEntry
	for id, lot := range s.All() {
		if af.Pass(lot.Asset) && hf.Pass(lot.Host) {
			entries = append(entries, LotEntry{ID: id, Lot: lot})
		}
	}
	return entries
}

// Assets returns the distinct assets held, in the order they were first
// added.
func (s *Stash) Assets() []AssetSymbol {
	var assets []AssetSymbol
	seen := make(map[AssetSymbol]bool)
	for _, lot := range s.All() {
		if seen[lot.Asset] {
			continue
		}
		seen[lot.Asset] = true
		assets = append(assets, lot.Asset)
	}
	return assets
}

// Value returns the market value of every lot in the stash.
//
// Valuation is all or nothing: if any held asset is missing from prices, it
// fails with a *MissingPriceError naming the first such lot.
func (s *Stash) Value(prices PriceMap) (float64, error) {
	v, err := s.Valuation(prices)
	if err != nil {
		return 0, err
	}
	return v.Total, nil
}
