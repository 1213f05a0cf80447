// Package renderer renders stash reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/stash"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"money":  formatMoney,
	"amount": formatAmount,
	"qty":    formatQuantity,
	"date":   formatDate,
}

// LotsMarkdown renders a list of lots, selected by the given filters, as a
// markdown table.
func LotsMarkdown(entries []stash.LotEntry, af stash.AssetFilter, hf stash.HostFilter) string {
	data := struct {
		Lots   []stash.LotEntry
		Asset  stash.AssetFilter
		Host   stash.HostFilter
		Filter bool
	}{
		Lots:  entries,
		Asset: af,
		Host:  hf,
	}
	_, assetSet := af.Symbol()
	_, hostSet := hf.Host()
	data.Filter = assetSet || hostSet
	return renderTemplate("lots", "lots.md", nil, data)
}

// ValuationMarkdown renders a valuation as a markdown table followed by its
// total.
func ValuationMarkdown(v stash.Valuation) string {
	partials := map[string]string{
		"valuation_total": "valuation_total.md",
	}
	data := struct {
		stash.Valuation
		Currency string
	}{
		Valuation: v,
		Currency:  v.Currency(),
	}
	return renderTemplate("valuation", "valuation.md", partials, data)
}

// TotalText formats the total of a valuation in its currency, or as a plain
// amount when lots are quoted in several currencies.
func TotalText(v stash.Valuation) string {
	if cur := v.Currency(); cur != "" {
		return formatMoney(v.Total, cur)
	}
	return formatAmount(v.Total)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// formatMoney formats value in currency. Unknown currencies are printed as a
// plain amount followed by their code.
func formatMoney(value float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return strings.TrimSpace(formatAmount(value) + " " + currency)
	}
	dec := decimal.NewFromFloat(value).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// formatAmount formats a value without currency with two decimals.
func formatAmount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// formatQuantity formats a quantity with as many digits as needed.
func formatQuantity(value float64) string {
	return decimal.NewFromFloat(value).String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateOnly)
}
