package entities

import (
	"time"

	"planpaineis_propostas/internal/domain/format"
)

// SalesProfile is a reusable seller identity stored in the sales_profiles collection.
//
// LegacyRef is only filled for records copied by the local-to-remote migration
// and lets a rerun detect what was already copied.
type SalesProfile struct {
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
	LegacyRef   string    `json:"legacy_ref,omitempty"`
}

// ToCompany projects the profile into the Company block of a proposal,
// masking the tax id and phone for display.
func (p SalesProfile) ToCompany() Company {
	return Company{
		Name:       p.Name,
		SocialName: p.SocialName,
		CNPJ:       format.MaskCNPJ(p.CNPJ),
		Address:    p.Address,
		Phone:      format.MaskPhone(p.Phone),
		Email:      p.Email,
		Logo:       p.Logo,
	}
}
