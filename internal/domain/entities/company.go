package entities

// Company is the seller block printed on a proposal. It has no identity of its
// own and is embedded by value.
type Company struct {
	Name       string `json:"name"`
	SocialName string `json:"socialName"`
	CNPJ       string `json:"cnpj"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Logo       string `json:"logo"`
}

// Client is the buyer block printed on a proposal.
type Client struct {
	Name          string `json:"name"`
	SocialName    string `json:"socialName"`
	CNPJ          string `json:"cnpj"`
	ContactPerson string `json:"contactPerson"`
}
