package response

import (
	"encoding/json"
	"testing"
	"time"

	"planpaineis_propostas/internal/domain/entities"
)

func TestFromCatalog(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Catalog{
		SalesProfiles: []entities.SalesProfile{{ID: 1, Name: "PlanPaineis", CNPJ: "11.222.333/0001-81", CreatedAt: now}},
		Products: []entities.Product{{
			ID: 2, Name: "Painel", Price: 10.5,
			Details: []entities.ProductDetail{{Label: "Local", Value: "Centro"}},
		}},
	}

	res := FromCatalog(c)
	if len(res.SalesProfiles) != 1 || res.SalesProfiles[0].CNPJ != "11.222.333/0001-81" || !res.SalesProfiles[0].CreatedAt.Equal(now) {
		t.Fatalf("unexpected profiles: %+v", res.SalesProfiles)
	}
	if len(res.Products) != 1 || res.Products[0].Details[0].Label != "Local" || res.Products[0].Price != 10.5 {
		t.Fatalf("unexpected products: %+v", res.Products)
	}
	if res.CoverImages == nil {
		t.Fatalf("expected empty cover list, got nil")
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw["coverImages"]) != "[]" {
		t.Fatalf("expected empty array, got %s", raw["coverImages"])
	}
}

func TestFromProduct_NoDetails(t *testing.T) {
	res := FromProduct(entities.Product{ID: 1})
	if res.Details == nil || len(res.Details) != 0 {
		t.Fatalf("expected empty details, got %+v", res.Details)
	}
}
