package gormrepo

import (
	"time"

	"planpaineis_propostas/internal/domain/entities"
)

type salesProfileModel struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ProfileName string
	Name        string
	SocialName  string
	CNPJ        string `gorm:"column:cnpj"`
	Address     string
	Phone       string
	Email       string
	Logo        string
	CreatedAt   time.Time
	LegacyRef   string `gorm:"index"`
}

func (salesProfileModel) TableName() string { return "sales_profiles" }

type productDetailModel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type productModel struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	Name             string
	Details          []productDetailModel `gorm:"serializer:json;type:jsonb"`
	Price            float64              `gorm:"type:numeric(12,2)"`
	PanelCount       int
	InsertionsPerDay int
	ImageURL         string `gorm:"column:image_url"`
	Observations     string
	CreatedAt        time.Time
	LegacyRef        string `gorm:"index"`
}

func (productModel) TableName() string { return "products" }

type coverImageModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	URL       string `gorm:"column:url"`
	CreatedAt time.Time
	LegacyRef string `gorm:"index"`
}

func (coverImageModel) TableName() string { return "cover_images" }

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&salesProfileModel{}, &productModel{}, &coverImageModel{}}
}

func toSalesProfileModel(p entities.SalesProfile) salesProfileModel {
	return salesProfileModel{
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
		LegacyRef:   p.LegacyRef,
	}
}

func fromSalesProfileModel(m salesProfileModel) entities.SalesProfile {
	return entities.SalesProfile{
		ID:          m.ID,
		ProfileName: m.ProfileName,
		Name:        m.Name,
		SocialName:  m.SocialName,
		CNPJ:        m.CNPJ,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Logo:        m.Logo,
		CreatedAt:   m.CreatedAt,
		LegacyRef:   m.LegacyRef,
	}
}

func toProductModel(p entities.Product) productModel {
	details := make([]productDetailModel, len(p.Details))
	for i, d := range p.Details {
		details[i] = productDetailModel{Label: d.Label, Value: d.Value}
	}
	return productModel{
		ID:               p.ID,
		Name:             p.Name,
		Details:          details,
		Price:            p.Price,
		PanelCount:       p.PanelCount,
		InsertionsPerDay: p.InsertionsPerDay,
		ImageURL:         p.ImageURL,
		Observations:     p.Observations,
		CreatedAt:        p.CreatedAt,
		LegacyRef:        p.LegacyRef,
	}
}

func fromProductModel(m productModel) entities.Product {
	details := make([]entities.ProductDetail, len(m.Details))
	for i, d := range m.Details {
		details[i] = entities.ProductDetail{Label: d.Label, Value: d.Value}
	}
	return entities.Product{
		ID:               m.ID,
		Name:             m.Name,
		Details:          details,
		Price:            m.Price,
		PanelCount:       m.PanelCount,
		InsertionsPerDay: m.InsertionsPerDay,
		ImageURL:         m.ImageURL,
		Observations:     m.Observations,
		CreatedAt:        m.CreatedAt,
		LegacyRef:        m.LegacyRef,
	}
}

func toCoverImageModel(c entities.CoverImage) coverImageModel {
	return coverImageModel{ID: c.ID, Name: c.Name, URL: c.URL, CreatedAt: c.CreatedAt, LegacyRef: c.LegacyRef}
}

func fromCoverImageModel(m coverImageModel) entities.CoverImage {
	return entities.CoverImage{ID: m.ID, Name: m.Name, URL: m.URL, CreatedAt: m.CreatedAt, LegacyRef: m.LegacyRef}
}
