package legacy

import (
	"time"

	"planpaineis_propostas/internal/domain/entities"
)

// Records mirror the JSON the offline app wrote. created_at is optional and
// may be empty, so it is kept as a string here.

type salesProfileRecord struct {
	ID          int64  `json:"id"`
	ProfileName string `json:"profileName"`
	Name        string `json:"name"`
	SocialName  string `json:"socialName"`
	CNPJ        string `json:"cnpj"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Logo        string `json:"logo"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (r salesProfileRecord) toEntity() entities.SalesProfile {
	return entities.SalesProfile{
		ID:          r.ID,
		ProfileName: r.ProfileName,
		Name:        r.Name,
		SocialName:  r.SocialName,
		CNPJ:        r.CNPJ,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Logo:        r.Logo,
		CreatedAt:   parseTime(r.CreatedAt),
	}
}

type productRecord struct {
	ID               int64                    `json:"id"`
	Name             string                   `json:"name"`
	Details          []entities.ProductDetail `json:"details"`
	Price            float64                  `json:"price"`
	PanelCount       int                      `json:"panelCount"`
	InsertionsPerDay int                      `json:"insertionsPerDay"`
	ImageURL         string                   `json:"imageUrl"`
	Observations     string                   `json:"observations,omitempty"`
	CreatedAt        string                   `json:"created_at,omitempty"`
}

func (r productRecord) toEntity() entities.Product {
	return entities.Product{
		ID:               r.ID,
		Name:             r.Name,
		Details:          r.Details,
		Price:            r.Price,
		PanelCount:       r.PanelCount,
		InsertionsPerDay: r.InsertionsPerDay,
		ImageURL:         r.ImageURL,
		Observations:     r.Observations,
		CreatedAt:        parseTime(r.CreatedAt),
	}
}

type coverImageRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (r coverImageRecord) toEntity() entities.CoverImage {
	return entities.CoverImage{ID: r.ID, Name: r.Name, URL: r.URL, CreatedAt: parseTime(r.CreatedAt)}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}
