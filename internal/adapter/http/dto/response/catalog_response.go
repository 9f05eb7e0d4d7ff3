package response

import (
	"time"

	"planpaineis_propostas/internal/domain/entities"
)

type SalesProfileResponse struct {
	ID          int64     `json:"id"`
	ProfileName string    `json:"profileName"`
	Name        string    `json:"name"`
	SocialName  string    `json:"socialName"`
	CNPJ        string    `json:"cnpj"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Logo        string    `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductDetailResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ProductResponse struct {
	ID               int64                   `json:"id"`
	Name             string                  `json:"name"`
	Details          []ProductDetailResponse `json:"details"`
	Price            float64                 `json:"price"`
	PanelCount       int                     `json:"panelCount"`
	InsertionsPerDay int                     `json:"insertionsPerDay"`
	ImageURL         string                  `json:"imageUrl"`
	Observations     string                  `json:"observations,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

type CoverImageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogResponse is the joined fetch; lists are never null.
type CatalogResponse struct {
	SalesProfiles []SalesProfileResponse `json:"salesProfiles"`
	Products      []ProductResponse      `json:"products"`
	CoverImages   []CoverImageResponse   `json:"coverImages"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func FromSalesProfile(p entities.SalesProfile) SalesProfileResponse {
	return SalesProfileResponse{
		ID:          p.ID,
		ProfileName: p.ProfileName,
		Name:        p.Name,
		SocialName:  p.SocialName,
		CNPJ:        p.CNPJ,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Logo:        p.Logo,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProduct(p entities.Product) ProductResponse {
	details := make([]ProductDetailResponse, 0, len(p.Details))
	for _, d := range p.Details {
		details = append(details, ProductDetailResponse{Label: d.Label, Value: d.Value})
	}
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Details:          details,
		Price:            p.Price,
		PanelCount:       p.PanelCount,
		InsertionsPerDay: p.InsertionsPerDay,
		ImageURL:         p.ImageURL,
		Observations:     p.Observations,
		CreatedAt:        p.CreatedAt,
	}
}

func FromCoverImage(c entities.CoverImage) CoverImageResponse {
	return CoverImageResponse{ID: c.ID, Name: c.Name, URL: c.URL, CreatedAt: c.CreatedAt}
}

func FromSalesProfiles(in []entities.SalesProfile) []SalesProfileResponse {
	out := make([]SalesProfileResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromSalesProfile(p))
	}
	return out
}

func FromProducts(in []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCoverImages(in []entities.CoverImage) []CoverImageResponse {
	out := make([]CoverImageResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCoverImage(c))
	}
	return out
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	return CatalogResponse{
		SalesProfiles: FromSalesProfiles(c.SalesProfiles),
		Products:      FromProducts(c.Products),
		CoverImages:   FromCoverImages(c.CoverImages),
	}
}
