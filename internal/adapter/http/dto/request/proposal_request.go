package request

import (
	"errors"
	"strings"

	"planpaineis_propostas/internal/domain/budget"
	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase"
)

var (
	ErrInvalidMissingPolicy = errors.New("invalid missing product policy")
)

const (
	MissingPolicyOmit        = "omit"
	MissingPolicyPlaceholder = "placeholder"
)

type CompanyRequest struct {
	Name       string `json:"name" yaml:"name"`
	SocialName string `json:"socialName" yaml:"socialName"`
	CNPJ       string `json:"cnpj" yaml:"cnpj"`
	Address    string `json:"address" yaml:"address"`
	Phone      string `json:"phone" yaml:"phone"`
	Email      string `json:"email" yaml:"email"`
	Logo       string `json:"logo" yaml:"logo"`
}

type ClientRequest struct {
	Name          string `json:"name" yaml:"name"`
	SocialName    string `json:"socialName" yaml:"socialName"`
	CNPJ          string `json:"cnpj" yaml:"cnpj"`
	ContactPerson string `json:"contactPerson" yaml:"contactPerson"`
}

type DetailsRequest struct {
	EmissionDate   string `json:"emissionDate" yaml:"emissionDate"`
	ValidityPeriod string `json:"validityPeriod" yaml:"validityPeriod"`
	CoverImageURL  string `json:"coverImageUrl" yaml:"coverImageUrl"`
}

type BudgetOptionRequest struct {
	ID                 int64         `json:"id" yaml:"id"`
	Months             int           `json:"months" yaml:"months"`
	Discount           float64       `json:"discount" yaml:"discount"`
	SelectedProductIDs []int64       `json:"selectedProductIds" yaml:"selectedProductIds"`
	Installments       int           `json:"installments" yaml:"installments"`
	PaymentConditions  string        `json:"paymentConditions" yaml:"paymentConditions"`
	Quantities         map[int64]int `json:"quantities" yaml:"quantities"`
}

// ProposalRequest is the proposal form: either a stored profile/cover by id,
// or literal blocks, or both (literal fields win). The same shape is read from
// YAML by the command line exporter.
type ProposalRequest struct {
	ProfileID     int64                 `json:"profileId" yaml:"profileId"`
	Company       CompanyRequest        `json:"company" yaml:"company"`
	Client        ClientRequest         `json:"client" yaml:"client"`
	Details       DetailsRequest        `json:"details" yaml:"details"`
	CoverImageID  int64                 `json:"coverImageId" yaml:"coverImageId"`
	BudgetOptions []BudgetOptionRequest `json:"budgetOptions" yaml:"budgetOptions"`
	MissingPolicy string                `json:"missingPolicy" yaml:"missingPolicy"`
}

// ExportRequest adds the download name to a proposal form.
type ExportRequest struct {
	ProposalRequest `yaml:",inline"`
	FileName        string `json:"fileName" yaml:"fileName"`
}

func (r ProposalRequest) ToComposeInput() (usecase.ComposeInput, error) {
	policy, err := parseMissingPolicy(r.MissingPolicy)
	if err != nil {
		return usecase.ComposeInput{}, err
	}

	options := make([]entities.BudgetOption, 0, len(r.BudgetOptions))
	for _, o := range r.BudgetOptions {
		options = append(options, entities.BudgetOption{
			ID:                 o.ID,
			Months:             o.Months,
			Discount:           o.Discount,
			SelectedProductIDs: entities.NewProductIDSet(o.SelectedProductIDs...),
			Installments:       o.Installments,
			PaymentConditions:  strings.TrimSpace(o.PaymentConditions),
			Quantities:         o.Quantities,
		})
	}

	return usecase.ComposeInput{
		ProfileID: r.ProfileID,
		Company: entities.Company{
			Name:       strings.TrimSpace(r.Company.Name),
			SocialName: strings.TrimSpace(r.Company.SocialName),
			CNPJ:       r.Company.CNPJ,
			Address:    strings.TrimSpace(r.Company.Address),
			Phone:      r.Company.Phone,
			Email:      strings.TrimSpace(r.Company.Email),
			Logo:       r.Company.Logo,
		},
		Client: entities.Client{
			Name:          strings.TrimSpace(r.Client.Name),
			SocialName:    strings.TrimSpace(r.Client.SocialName),
			CNPJ:          r.Client.CNPJ,
			ContactPerson: strings.TrimSpace(r.Client.ContactPerson),
		},
		Details: entities.ProposalDetails{
			EmissionDate:   r.Details.EmissionDate,
			ValidityPeriod: r.Details.ValidityPeriod,
			CoverImageURL:  r.Details.CoverImageURL,
		},
		CoverImageID:  r.CoverImageID,
		BudgetOptions: options,
		MissingPolicy: policy,
	}, nil
}

func parseMissingPolicy(s string) (budget.MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", MissingPolicyOmit:
		return budget.OmitMissing, nil
	case MissingPolicyPlaceholder:
		return budget.PlaceholderMissing, nil
	default:
		return budget.OmitMissing, ErrInvalidMissingPolicy
	}
}
