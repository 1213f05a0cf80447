package quotes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/stash"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Extractor reads market prices out of the multi-quote page.
//
// Its zero value uses the built-in Layouts and the wall clock.
type Extractor struct {
	Layouts []Layout
	// Now is the observation time of prices whose layout has no epoch.
	Now func() time.Time
}

// Extract reads prices from html with the default Extractor.
func Extract(html string) (stash.PriceList, error) {
	var e Extractor
	return e.Extract(html)
}

// Extract returns the prices found in html.
//
// Layouts are tried in order and the first one matching at least one row is
// used alone: rows are never merged across layouts. A page that matches no
// layout yields an empty list, not an error.
func (e *Extractor) Extract(html string) (stash.PriceList, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("cannot parse quote page: %w", err)
	}

	layouts := e.Layouts
	if layouts == nil {
		layouts = Layouts
	}
	for _, layout := range layouts {
		rows := layout.match(doc.Selection)
		if len(rows) == 0 {
			log.Debug().Str("layout", layout.Name).Msg("quote page layout does not match")
			continue
		}
		log.Debug().Str("layout", layout.Name).Int("count", len(rows)).Msg("quote page layout matched")
		return e.prices(layout, rows)
	}
	return stash.PriceList{}, nil
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// prices converts captured rows into market prices.
func (e *Extractor) prices(layout Layout, rows []map[string]string) (stash.PriceList, error) {
	// all rows of a page observed at the same time.
	defaultEpoch := uint64(e.now().Unix())
	hasEpoch := layout.captures(FieldEpoch)

	prices := make(stash.PriceList, 0, len(rows))
	for _, row := range rows {
		level, err := parseLevel(row[FieldPrice])
		if err != nil {
			return nil, fmt.Errorf("layout %s, symbol %q: %w", layout.Name, row[FieldSymbol], err)
		}
		epoch := defaultEpoch
		if hasEpoch {
			epoch, err = parseEpoch(row[FieldEpoch])
			if err != nil {
				return nil, fmt.Errorf("layout %s, symbol %q: %w", layout.Name, row[FieldSymbol], err)
			}
		}
		prices = append(prices, stash.MarketPrice{
			Symbol:   row[FieldSymbol],
			Asset:    row[FieldAsset],
			Level:    level,
			Currency: row[FieldCurrency],
			Epoch:    epoch,
		})
	}
	return prices, nil
}

// match returns the captured values of every row of root matching the layout.
func (l Layout) match(root *goquery.Selection) []map[string]string {
	var rows []map[string]string
	n := l.cells()
	root.Find(l.Rows).Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < n {
			return
		}
		values := make(map[string]string, len(l.Captures))
		for _, c := range l.Captures {
			v, ok := c.value(cells.Eq(c.Cell))
			if !ok {
				return
			}
			values[c.Field] = v
		}
		rows = append(rows, values)
	})
	return rows
}

// value reads the captured value in cell.
func (c Capture) value(cell *goquery.Selection) (string, bool) {
	sel := cell
	if c.Selector != "" {
		sel = cell.Find(c.Selector).First()
	}
	if sel.Length() == 0 {
		return "", false
	}
	var v string
	if c.Attr != "" {
		v, _ = sel.Attr(c.Attr)
	} else {
		v = sel.Text()
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// parseLevel parses a price cell as a plain decimal number.
func parseLevel(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &stash.ParseError{Field: "price", Value: s, Err: err}
	}
	return d.InexactFloat64(), nil
}

// parseEpoch parses a time cell in seconds since the Unix epoch.
func parseEpoch(s string) (uint64, error) {
	epoch, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &stash.ParseError{Field: "epoch", Value: s, Err: err}
	}
	return epoch, nil
}
