package stash

import (
	"errors"
	"testing"
)

func TestParseAssetFilter(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		pass    []AssetSymbol
		reject  []AssetSymbol
		wantErr bool
	}{
		{name: "empty passes everything", in: "", pass: []AssetSymbol{"AAPL", "GOOG", ""}},
		{name: "blank passes everything", in: "  ", pass: []AssetSymbol{"AAPL", "GOOG"}},
		{name: "one symbol", in: "aapl", pass: []AssetSymbol{"AAPL"}, reject: []AssetSymbol{"GOOG", "AAP"}},
		{name: "list is rejected", in: "aapl,goog", wantErr: true},
		{name: "interior space is rejected", in: "aa pl", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseAssetFilter(tc.in)
			if tc.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ParseAssetFilter(%q) error = %v, want a *ParseError", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetFilter(%q) unexpected error: %v", tc.in, err)
			}
			for _, s := range tc.pass {
				if !f.Pass(s) {
					t.Errorf("ParseAssetFilter(%q).Pass(%q) = false, want true", tc.in, s)
				}
			}
			for _, s := range tc.reject {
				if f.Pass(s) {
					t.Errorf("ParseAssetFilter(%q).Pass(%q) = true, want false", tc.in, s)
				}
			}
		})
	}
}

func TestParseHostFilter(t *testing.T) {
	if f := ParseHostFilter(""); f != AnyHost() {
		t.Errorf("ParseHostFilter(\"\") = %v, want any host", f)
	}
	f := ParseHostFilter("  my bank ")
	if h, ok := f.Host(); !ok || h != "my bank" {
		t.Errorf("ParseHostFilter().Host() = %q, %v, want %q, true", h, ok, "my bank")
	}
	if !f.Pass("my bank") {
		t.Errorf("filter does not pass its own host")
	}
	if f.Pass("my bank2") || f.Pass("My bank") {
		t.Errorf("filter passes a different host")
	}
}

func TestFilter_ZeroValue(t *testing.T) {
	var af AssetFilter
	var hf HostFilter
	if !af.Pass("ANY") || !hf.Pass("any") {
		t.Errorf("zero value filters must pass everything")
	}
	if af.String() != "*" || hf.String() != "*" {
		t.Errorf("zero value filters String() = %q, %q, want *", af, hf)
	}
}
