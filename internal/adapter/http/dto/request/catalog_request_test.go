package request

import "testing"

func TestProductRequest_ToEntity(t *testing.T) {
	r := ProductRequest{
		Name:    "  Painel Centro ",
		Price:   1500,
		Details: []ProductDetailRequest{{Label: "Local", Value: " Centro "}, {Label: " ", Value: "ignored"}},
	}

	p := r.ToEntity(7)
	if p.ID != 7 || p.Name != "Painel Centro" || p.Price != 1500 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if len(p.Details) != 1 || p.Details[0].Value != "Centro" {
		t.Fatalf("unexpected details: %+v", p.Details)
	}
}

func TestSalesProfileRequest_ToEntity(t *testing.T) {
	p := SalesProfileRequest{ProfileName: " Matriz ", Name: "PlanPaineis", CNPJ: "11222333000181"}.ToEntity(0)
	if p.ProfileName != "Matriz" || p.Name != "PlanPaineis" || p.CNPJ != "11222333000181" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestCoverImageRequest_ToEntity(t *testing.T) {
	c := CoverImageRequest{Name: " Verão ", URL: "https://cdn/x.png"}.ToEntity(2)
	if c.ID != 2 || c.Name != "Verão" || c.URL != "https://cdn/x.png" {
		t.Fatalf("unexpected cover: %+v", c)
	}
}
