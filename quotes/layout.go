package quotes

// Fields captured by a Layout.
const (
	FieldAsset    = "asset"    // display name of the asset
	FieldSymbol   = "symbol"   // ticker symbol
	FieldPrice    = "price"    // price level
	FieldCurrency = "currency" // price currency
	FieldEpoch    = "epoch"    // observation time in seconds, optional
)

// Capture tells where to find one field in a table row.
type Capture struct {
	Field    string
	Cell     int    // index of the <td> in the row
	Selector string // CSS selector inside the cell, empty for the cell itself
	Attr     string // attribute to read, empty to read the text content
}

// Layout describes one known shape of the rows of the quote page.
//
// A row matches a layout only if every capture resolves to a non empty value.
type Layout struct {
	Name     string
	Rows     string // CSS selector of the table rows
	Captures []Capture
}

// cells returns the minimum number of cells a row must have.
func (l Layout) cells() int {
	n := 0
	for _, c := range l.Captures {
		n = max(n, c.Cell+1)
	}
	return n
}

// captures reports whether the layout captures field.
func (l Layout) captures(field string) bool {
	for _, c := range l.Captures {
		if c.Field == field {
			return true
		}
	}
	return false
}

// Layouts are the known layouts of the multi-quote page, most specific
// first: the early layout also captures the quote time.
//
// The page changes without notice. A new shape of the page is supported by
// adding a layout to this list.
var Layouts = []Layout{
	{
		Name: "early",
		Rows: "table tbody tr",
		Captures: []Capture{
			{Field: FieldAsset, Cell: 0, Selector: "a[title]", Attr: "title"},
			{Field: FieldSymbol, Cell: 0, Selector: "a[title]"},
			{Field: FieldPrice, Cell: 1, Selector: "fin-streamer[value]", Attr: "value"},
			{Field: FieldCurrency, Cell: 4},
			{Field: FieldEpoch, Cell: 5, Selector: "fin-streamer[value]", Attr: "value"},
		},
	},
	{
		Name: "2024-11-17",
		Rows: "table tbody tr",
		Captures: []Capture{
			{Field: FieldAsset, Cell: 0, Selector: "a[title]", Attr: "title"},
			{Field: FieldSymbol, Cell: 0, Selector: "a[title]"},
			{Field: FieldPrice, Cell: 1, Selector: `fin-streamer[data-field="regularMarketPrice"]`, Attr: "data-value"},
			{Field: FieldCurrency, Cell: 5},
		},
	},
}
