package stash

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testTime = time.Date(2024, 11, 17, 10, 30, 0, 0, time.UTC)

// newTestStash returns a stash with a fixed clock.
func newTestStash() *Stash {
	s := NewStash()
	s.Now = func() time.Time { return testTime }
	return s
}

func TestStash_AddLot(t *testing.T) {
	s := newTestStash()
	id := s.AddLot("AAPL", 10, 1500, "broker")
	if id != 1 {
		t.Errorf("AddLot() = %d, want 1", id)
	}
	got, ok := s.Lot(id)
	if !ok {
		t.Fatalf("Lot(%d) not found", id)
	}
	want := Lot{
		Asset: "AAPL",
		Size:  10,
		Basis: Basis{Cost: 1500, Count: 10, Time: testTime, Host: "broker"},
		Host:  "broker",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lot(%d) mismatch (-want +got):\n%s", id, diff)
	}
	if s.MaxLotID() != 1 {
		t.Errorf("MaxLotID() = %d, want 1", s.MaxLotID())
	}
}

func TestStash_AddLot_NoValidation(t *testing.T) {
	s := newTestStash()
	s.AddLot("X", -2, -3, "")
	s.AddLot("", 0, 0, "")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStash_AddLot_UTC(t *testing.T) {
	s := NewStash()
	paris := time.FixedZone("CET", 3600)
	s.Now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, paris) }
	id := s.AddLot("X", 1, 1, DefaultHost)
	lot, _ := s.Lot(id)
	if lot.Basis.Time.Location() != time.UTC || lot.Basis.Time.Hour() != 11 {
		t.Errorf("Basis.Time = %v, want 11:00 UTC", lot.Basis.Time)
	}
}

func TestStash_IDMonotonicity(t *testing.T) {
	s := newTestStash()
	seen := make(map[uint64]bool)
	var last uint64
	steps := []struct {
		add    bool
		remove uint64
	}{
		{add: true}, {add: true}, {remove: 2}, {add: true}, {remove: 3}, {remove: 1}, {add: true}, {remove: 42}, {add: true},
	}
	for i, step := range steps {
		if step.add {
			id := s.AddLot("A", 1, 1, DefaultHost)
			if seen[id] {
				t.Fatalf("step %d: id %d allocated twice", i, id)
			}
			seen[id] = true
		} else {
			s.RemoveLot(step.remove)
		}
		if s.MaxLotID() < last {
			t.Fatalf("step %d: MaxLotID() decreased from %d to %d", i, last, s.MaxLotID())
		}
		last = s.MaxLotID()
	}
	if s.MaxLotID() != 5 {
		t.Errorf("MaxLotID() = %d, want 5", s.MaxLotID())
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStash_RemoveLot(t *testing.T) {
	s := newTestStash()
	id := s.AddLot("AAPL", 1, 100, DefaultHost)

	if _, ok := s.RemoveLot(id + 1); ok {
		t.Errorf("RemoveLot(%d) of an unknown id returned true", id+1)
	}
	lot, ok := s.RemoveLot(id)
	if !ok || lot.Asset != "AAPL" {
		t.Errorf("RemoveLot(%d) = %v, %v, want the AAPL lot", id, lot, ok)
	}
	if _, ok := s.RemoveLot(id); ok {
		t.Errorf("RemoveLot(%d) twice returned true", id)
	}
	if s.Len() != 0 || s.MaxLotID() != id {
		t.Errorf("after removal Len() = %d, MaxLotID() = %d, want 0, %d", s.Len(), s.MaxLotID(), id)
	}
}

func TestStash_Lots(t *testing.T) {
	s := newTestStash()
	s.AddLot("AAPL", 1, 100, "broker") // 1
	s.AddLot("GOOG", 2, 200, "broker") // 2
	s.AddLot("AAPL", 3, 300, "bank")   // 3
	s.AddLot("MSFT", 4, 400, "bank")   // 4
	s.AddLot("AAPL", 5, 500, "broker") // 5
	s.RemoveLot(2)

	testCases := []struct {
		name    string
		af      AssetFilter
		hf      HostFilter
		wantIDs []uint64
	}{
		{"no filter", AnyAsset(), AnyHost(), []uint64{1, 3, 4, 5}},
		{"asset only", OneAsset("AAPL"), AnyHost(), []uint64{1, 3, 5}},
		{"host only", AnyAsset(), OneHost("bank"), []uint64{3, 4}},
		{"asset and host", OneAsset("AAPL"), OneHost("broker"), []uint64{1, 5}},
		{"removed asset", OneAsset("GOOG"), AnyHost(), nil},
		{"no match", OneAsset("MSFT"), OneHost("broker"), nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []uint64
			for _, e := range s.Lots(tc.af, tc.hf) {
				got = append(got, e.ID)
			}
			if diff := cmp.Diff(tc.wantIDs, got); diff != "" {
				t.Errorf("Lots(%v, %v) mismatch (-want +got):\n%s", tc.af, tc.hf, diff)
			}
		})
	}
}

func TestStash_Lots_IDOrder(t *testing.T) {
	s := newTestStash()
	for i := 0; i < 20; i++ {
		s.AddLot("A", float64(i), 0, DefaultHost)
	}
	var prev uint64
	for _, e := range s.Lots(AnyAsset(), AnyHost()) {
		if e.ID <= prev {
			t.Fatalf("Lots() not in ascending id order: %d after %d", e.ID, prev)
		}
		prev = e.ID
	}
}

func TestStash_Assets(t *testing.T) {
	s := newTestStash()
	s.AddLot("GOOG", 1, 1, DefaultHost)
	s.AddLot("AAPL", 1, 1, DefaultHost)
	s.AddLot("GOOG", 1, 1, DefaultHost)
	s.AddLot("MSFT", 1, 1, DefaultHost)
	s.AddLot("AAPL", 1, 1, DefaultHost)

	want := []AssetSymbol{"GOOG", "AAPL", "MSFT"}
	if diff := cmp.Diff(want, s.Assets()); diff != "" {
		t.Errorf("Assets() mismatch (-want +got):\n%s", diff)
	}

	if got := NewStash().Assets(); len(got) != 0 {
		t.Errorf("Assets() of an empty stash = %v, want none", got)
	}
}

func TestStash_AddLot_UpperCasesAsset(t *testing.T) {
	s := newTestStash()
	id := s.AddLot("goog", 2, 100, DefaultHost)

	if diff := cmp.Diff([]AssetSymbol{"GOOG"}, s.Assets()); diff != "" {
		t.Errorf("Assets() mismatch (-want +got):\n%s", diff)
	}
	got, err := s.Value(PriceList{{Symbol: "GOOG", Level: 150, Currency: "USD"}}.Map())
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}
	if got != 300 {
		t.Errorf("Value() = %v, want 300", got)
	}
	if n := len(s.Lots(OneAsset("goog"), AnyHost())); n != 1 {
		t.Errorf("Lots(OneAsset(goog)) = %d lots, want 1", n)
	}

	var buf bytes.Buffer
	if err := EncodeStash(&buf, s); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeStash(&buf)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := s.Lot(id)
	after, _ := back.Lot(id)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
