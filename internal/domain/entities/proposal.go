package entities

import "github.com/shopspring/decimal"

// ProposalItem is a product line of a budget option.
// Subtotal is always Price * Quantity; build items with NewProposalItem or
// WithQuantity so it is never stale.
type ProposalItem struct {
	Product
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

func NewProposalItem(p Product, quantity int) ProposalItem {
	return ProposalItem{
		Product:  p.Clone(),
		Quantity: quantity,
		Subtotal: Subtotal(p.Price, quantity),
	}
}

// WithQuantity returns a copy with the new quantity and a recomputed subtotal.
func (i ProposalItem) WithQuantity(quantity int) ProposalItem {
	return NewProposalItem(i.Product, quantity)
}

// WithPrice returns a copy with the new unit price and a recomputed subtotal.
func (i ProposalItem) WithPrice(price float64) ProposalItem {
	p := i.Product
	p.Price = price
	return NewProposalItem(p, i.Quantity)
}

func Subtotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

// BudgetTotals are the aggregate values printed under each budget option.
type BudgetTotals struct {
	Monthly             float64 `json:"monthly"`
	DiscountAmount      float64 `json:"discountAmount"`
	MonthlyWithDiscount float64 `json:"monthlyWithDiscount"`
	Contract            float64 `json:"contract"`
	Installment         float64 `json:"installment"`
	Panels              int     `json:"panels"`
	InsertionsPerDay    int     `json:"insertionsPerDay"`
}

// ProposalBudgetOption is the priced output of the budget engine.
type ProposalBudgetOption struct {
	Months            int            `json:"months"`
	Discount          float64        `json:"discount"`
	Items             []ProposalItem `json:"items"`
	Installments      int            `json:"installments"`
	PaymentConditions string         `json:"paymentConditions"`
	Totals            BudgetTotals   `json:"totals"`
}

type ProposalDetails struct {
	EmissionDate   string `json:"emissionDate"`
	ValidityPeriod string `json:"validityPeriod"`
	CoverImageURL  string `json:"coverImageUrl"`
}

// Proposal is assembled for a single render/export and never persisted.
type Proposal struct {
	Company       Company                `json:"company"`
	Client        Client                 `json:"client"`
	Details       ProposalDetails        `json:"details"`
	BudgetOptions []ProposalBudgetOption `json:"budgetOptions"`
}
