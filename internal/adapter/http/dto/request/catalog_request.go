package request

import (
	"strings"

	"planpaineis_propostas/internal/domain/entities"
)

// SalesProfileRequest is the payload of the profile create/update routes.
// Logo may be omitted when a file is sent in the same multipart request.
type SalesProfileRequest struct {
	ProfileName string `json:"profileName"`
	Name        string `json:"name" binding:"required"`
	SocialName  string `json:"socialName"`
	CNPJ        string `json:"cnpj"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Logo        string `json:"logo"`
}

func (r SalesProfileRequest) ToEntity(id int64) entities.SalesProfile {
	return entities.SalesProfile{
		ID:          id,
		ProfileName: strings.TrimSpace(r.ProfileName),
		Name:        strings.TrimSpace(r.Name),
		SocialName:  strings.TrimSpace(r.SocialName),
		CNPJ:        r.CNPJ,
		Address:     strings.TrimSpace(r.Address),
		Phone:       r.Phone,
		Email:       strings.TrimSpace(r.Email),
		Logo:        r.Logo,
	}
}

type ProductDetailRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ProductRequest struct {
	Name             string                 `json:"name" binding:"required"`
	Details          []ProductDetailRequest `json:"details"`
	Price            float64                `json:"price"`
	PanelCount       int                    `json:"panelCount"`
	InsertionsPerDay int                    `json:"insertionsPerDay"`
	ImageURL         string                 `json:"imageUrl"`
	Observations     string                 `json:"observations"`
}

// ToEntity drops details whose label is blank.
func (r ProductRequest) ToEntity(id int64) entities.Product {
	details := make([]entities.ProductDetail, 0, len(r.Details))
	for _, d := range r.Details {
		if strings.TrimSpace(d.Label) == "" {
			continue
		}
		details = append(details, entities.ProductDetail{Label: strings.TrimSpace(d.Label), Value: strings.TrimSpace(d.Value)})
	}
	return entities.Product{
		ID:               id,
		Name:             strings.TrimSpace(r.Name),
		Details:          details,
		Price:            r.Price,
		PanelCount:       r.PanelCount,
		InsertionsPerDay: r.InsertionsPerDay,
		ImageURL:         r.ImageURL,
		Observations:     strings.TrimSpace(r.Observations),
	}
}

type CoverImageRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url"`
}

func (r CoverImageRequest) ToEntity(id int64) entities.CoverImage {
	return entities.CoverImage{ID: id, Name: strings.TrimSpace(r.Name), URL: r.URL}
}
