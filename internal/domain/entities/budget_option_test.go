package entities

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewBudgetOption_Validation(t *testing.T) {
	cases := []struct {
		name         string
		months       int
		discount     float64
		installments int
		want         error
	}{
		{name: "valid", months: 12, discount: 10, installments: 3},
		{name: "zero discount", months: 1, discount: 0, installments: 1},
		{name: "full discount", months: 1, discount: 100, installments: 1},
		{name: "zero months", months: 0, discount: 10, installments: 1, want: ErrInvalidMonths},
		{name: "negative discount", months: 1, discount: -1, installments: 1, want: ErrInvalidDiscount},
		{name: "discount over 100", months: 1, discount: 100.5, installments: 1, want: ErrInvalidDiscount},
		{name: "zero installments", months: 1, discount: 0, installments: 0, want: ErrInvalidInstallments},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBudgetOption(1, tc.months, tc.discount, tc.installments, "", 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBudgetOption_InvalidQuantity(t *testing.T) {
	o, err := NewBudgetOption(1, 12, 0, 1, "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.Quantities = map[int64]int{1: 0}
	if err := o.Validate(); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestProductIDSet_Dedup(t *testing.T) {
	s := NewProductIDSet(3, 1, 3, 2, 1)
	if len(s) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(s))
	}
	got := s.Sorted()
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestProductIDSet_JSON(t *testing.T) {
	var o BudgetOption
	if err := json.Unmarshal([]byte(`{"months":12,"discount":5,"installments":2,"selectedProductIds":[4,2,4]}`), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.SelectedProductIDs) != 2 || !o.SelectedProductIDs.Has(4) || !o.SelectedProductIDs.Has(2) {
		t.Fatalf("unexpected set: %v", o.SelectedProductIDs)
	}
	b, err := json.Marshal(o.SelectedProductIDs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[2,4]" {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestBudgetOption_QuantityOf(t *testing.T) {
	o := BudgetOption{Quantities: map[int64]int{5: 3}}
	if o.QuantityOf(5) != 3 || o.QuantityOf(6) != 1 {
		t.Fatalf("unexpected quantities")
	}
}
