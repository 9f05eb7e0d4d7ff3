// Package budget turns a product selection and pricing terms into priced,
// itemized budget options. Everything here is pure: no I/O, no errors, inputs
// are never mutated.
package budget

import (
	"planpaineis_propostas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MissingPolicy decides what happens to a selected id that is not in the catalog.
type MissingPolicy int

const (
	// OmitMissing drops the line.
	OmitMissing MissingPolicy = iota
	// PlaceholderMissing emits a zeroed line carrying only the product id,
	// after the catalog-ordered lines, in ascending id order.
	PlaceholderMissing
)

type settings struct {
	missing MissingPolicy
}

type Option func(*settings)

func WithMissingPolicy(p MissingPolicy) Option {
	return func(s *settings) { s.missing = p }
}

var (
	hundred = decimal.NewFromInt(100)
)

// ComputeBudgetOption prices option against catalog. Items follow catalog
// order, not selection order.
func ComputeBudgetOption(catalog []entities.Product, option entities.BudgetOption, opts ...Option) entities.ProposalBudgetOption {
	cfg := settings{missing: OmitMissing}
	for _, o := range opts {
		o(&cfg)
	}

	items := make([]entities.ProposalItem, 0, len(option.SelectedProductIDs))
	seen := make(map[int64]bool, len(option.SelectedProductIDs))
	for _, p := range catalog {
		if !option.SelectedProductIDs.Has(p.ID) || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		items = append(items, entities.NewProposalItem(p, option.QuantityOf(p.ID)))
	}

	if cfg.missing == PlaceholderMissing {
		for _, id := range option.SelectedProductIDs.Sorted() {
			if seen[id] {
				continue
			}
			items = append(items, entities.ProposalItem{Product: entities.Product{ID: id}})
		}
	}

	return entities.ProposalBudgetOption{
		Months:            option.Months,
		Discount:          option.Discount,
		Items:             items,
		Installments:      option.Installments,
		PaymentConditions: option.PaymentConditions,
		Totals:            Totals(items, option.Months, option.Discount, option.Installments),
	}
}

// ComputeAll prices every option against the same catalog.
func ComputeAll(catalog []entities.Product, options []entities.BudgetOption, opts ...Option) []entities.ProposalBudgetOption {
	out := make([]entities.ProposalBudgetOption, 0, len(options))
	for _, o := range options {
		out = append(out, ComputeBudgetOption(catalog, o, opts...))
	}
	return out
}

// Totals aggregates item subtotals. Monthly values are the sum of subtotals;
// the contract value is the discounted monthly value times months, split into
// installments. Money values are rounded to cents.
func Totals(items []entities.ProposalItem, months int, discount float64, installments int) entities.BudgetTotals {
	monthly := decimal.Zero
	var panels, insertions int
	for _, it := range items {
		monthly = monthly.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		panels += it.PanelCount * it.Quantity
		insertions += it.InsertionsPerDay * it.Quantity
	}

	discountAmount := monthly.Mul(decimal.NewFromFloat(discount)).Div(hundred)
	discounted := monthly.Sub(discountAmount)
	contract := discounted.Mul(decimal.NewFromInt(int64(months)))
	installment := decimal.Zero
	if installments > 0 {
		installment = contract.Div(decimal.NewFromInt(int64(installments)))
	}

	return entities.BudgetTotals{
		Monthly:             monthly.Round(2).InexactFloat64(),
		DiscountAmount:      discountAmount.Round(2).InexactFloat64(),
		MonthlyWithDiscount: discounted.Round(2).InexactFloat64(),
		Contract:            contract.Round(2).InexactFloat64(),
		Installment:         installment.Round(2).InexactFloat64(),
		Panels:              panels,
		InsertionsPerDay:    insertions,
	}
}
