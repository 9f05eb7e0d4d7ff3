// Package view renders a composed proposal into the markup of the live
// document view that the renderer captures.
package view

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"planpaineis_propostas/internal/domain/entities"
)

// RootID is the id of the element that holds the whole proposal.
const RootID = "proposal-preview"

//go:embed proposal.html.tmpl
var proposalHTML string

var printer = message.NewPrinter(language.BrazilianPortuguese)

var proposalTmpl = template.Must(template.New("proposal").Funcs(template.FuncMap{
	"brl":     FormatBRL,
	"percent": formatPercent,
	"asset":   assetURL,
	"inc":     func(i int) int { return i + 1 },
}).Parse(proposalHTML))

// RenderProposalHTML returns the proposal markup rooted at RootID. Asset
// references are expected to be embeddable already; anything that is neither
// a data:image URI nor an http(s) URL is dropped.
func RenderProposalHTML(p entities.Proposal) (string, error) {
	var buf bytes.Buffer
	err := proposalTmpl.Execute(&buf, struct {
		RootID   string
		Proposal entities.Proposal
	}{RootID: RootID, Proposal: p})
	if err != nil {
		return "", fmt.Errorf("render proposal view: %w", err)
	}
	return buf.String(), nil
}

// FormatBRL formats v as Brazilian reais, e.g. "R$ 12.345,50".
func FormatBRL(v float64) string {
	return printer.Sprintf("%v %v", currency.Symbol(currency.BRL), number.Decimal(v, number.Scale(2)))
}

func formatPercent(v float64) string {
	return printer.Sprintf("%v%%", number.Decimal(v, number.MaxFractionDigits(2)))
}

func assetURL(ref string) template.URL {
	switch {
	case strings.HasPrefix(ref, "data:image/"),
		strings.HasPrefix(ref, "https://"),
		strings.HasPrefix(ref, "http://"):
		return template.URL(ref)
	}
	return ""
}
