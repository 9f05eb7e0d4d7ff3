package entities

import (
	"encoding/json"
	"errors"
	"sort"
)

var (
	ErrInvalidMonths       = errors.New("months must be a positive integer")
	ErrInvalidDiscount     = errors.New("discount must be a percentage between 0 and 100")
	ErrInvalidInstallments = errors.New("installments must be a positive integer")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
)

// ProductIDSet holds the selected product ids of a budget option. Each id
// appears at most once.
type ProductIDSet map[int64]struct{}

func NewProductIDSet(ids ...int64) ProductIDSet {
	s := make(ProductIDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ProductIDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s ProductIDSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s ProductIDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *ProductIDSet) UnmarshalJSON(b []byte) error {
	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewProductIDSet(ids...)
	return nil
}

// BudgetOption is the authoring input of the budget engine: pricing terms plus
// a product selection. Quantities is optional; absent ids default to 1.
type BudgetOption struct {
	ID                 int64         `json:"id"`
	Months             int           `json:"months"`
	Discount           float64       `json:"discount"`
	SelectedProductIDs ProductIDSet  `json:"selectedProductIds"`
	Installments       int           `json:"installments"`
	PaymentConditions  string        `json:"paymentConditions"`
	Quantities         map[int64]int `json:"quantities,omitempty"`
}

// NewBudgetOption validates the engine's input constraints. The engine itself
// never fails, so invalid options must be rejected here.
func NewBudgetOption(id int64, months int, discount float64, installments int, paymentConditions string, productIDs ...int64) (BudgetOption, error) {
	o := BudgetOption{
		ID:                 id,
		Months:             months,
		Discount:           discount,
		SelectedProductIDs: NewProductIDSet(productIDs...),
		Installments:       installments,
		PaymentConditions:  paymentConditions,
	}
	if err := o.Validate(); err != nil {
		return BudgetOption{}, err
	}
	return o, nil
}

func (o BudgetOption) Validate() error {
	if o.Months <= 0 {
		return ErrInvalidMonths
	}
	if o.Discount < 0 || o.Discount > 100 {
		return ErrInvalidDiscount
	}
	if o.Installments <= 0 {
		return ErrInvalidInstallments
	}
	for _, q := range o.Quantities {
		if q <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// QuantityOf returns the tracked quantity for id, or 1.
func (o BudgetOption) QuantityOf(id int64) int {
	if q, ok := o.Quantities[id]; ok && q > 0 {
		return q
	}
	return 1
}
