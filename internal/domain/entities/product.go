package entities

import "time"

type ProductDetail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product is a catalog entry (an advertising panel package). Proposals reference
// products by value and never mutate them.
type Product struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Details          []ProductDetail `json:"details"`
	Price            float64         `json:"price"`
	PanelCount       int             `json:"panelCount"`
	InsertionsPerDay int             `json:"insertionsPerDay"`
	ImageURL         string          `json:"imageUrl"`
	Observations     string          `json:"observations,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	LegacyRef        string          `json:"legacy_ref,omitempty"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	if p.Details != nil {
		out.Details = make([]ProductDetail, len(p.Details))
		copy(out.Details, p.Details)
	}
	return out
}
