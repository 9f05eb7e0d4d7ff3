package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"planpaineis_propostas/internal/domain/budget"
	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/domain/format"
	"planpaineis_propostas/internal/usecase/interfaces"
)

var (
	ErrProfileNotFound     = errors.New("sales profile not found")
	ErrCoverNotFound       = errors.New("cover image not found")
	ErrInvalidBudgetOption = errors.New("invalid budget option")
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// ComposeInput is everything the seller fills in to build a proposal.
//
// ProfileID, when set, fills the company block from a stored sales profile;
// Company overrides it field by field. CoverImageID works the same way for
// Details.CoverImageURL.
type ComposeInput struct {
	ProfileID     int64
	Company       entities.Company
	Client        entities.Client
	Details       entities.ProposalDetails
	CoverImageID  int64
	BudgetOptions []entities.BudgetOption
	MissingPolicy budget.MissingPolicy
}

type IProposalUseCase interface {
	Compose(ctx context.Context, in ComposeInput) (entities.Proposal, error)
	Export(ctx context.Context, p entities.Proposal, format interfaces.ExportFormat, fileName string) (interfaces.ExportedDocument, error)
}

type ProposalUseCase struct {
	profiles interfaces.ISalesProfileRepository
	products interfaces.IProductRepository
	covers   interfaces.ICoverImageRepository
	assets   interfaces.IAssetResolver
	exporter interfaces.IDocumentExporter
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	profiles interfaces.ISalesProfileRepository,
	products interfaces.IProductRepository,
	covers interfaces.ICoverImageRepository,
	assets interfaces.IAssetResolver,
	exporter interfaces.IDocumentExporter,
) *ProposalUseCase {
	return &ProposalUseCase{profiles: profiles, products: products, covers: covers, assets: assets, exporter: exporter}
}

// Compose reads the catalog, fills company and cover from the chosen records
// and computes every budget option against the current products.
func (u *ProposalUseCase) Compose(ctx context.Context, in ComposeInput) (entities.Proposal, error) {
	for i, opt := range in.BudgetOptions {
		if err := opt.Validate(); err != nil {
			return entities.Proposal{}, fmt.Errorf("%w %d: %w", ErrInvalidBudgetOption, i+1, err)
		}
	}

	cat, err := fetchCatalog(ctx, u.profiles, u.products, u.covers)
	if err != nil {
		return entities.Proposal{}, err
	}

	company := entities.Company{}
	if in.ProfileID != 0 {
		profile, ok := findProfile(cat.SalesProfiles, in.ProfileID)
		if !ok {
			return entities.Proposal{}, ErrProfileNotFound
		}
		company = profile.ToCompany()
	}
	company = overlayCompany(company, in.Company)

	details := in.Details
	if in.CoverImageID != 0 && details.CoverImageURL == "" {
		cover, ok := findCover(cat.CoverImages, in.CoverImageID)
		if !ok {
			return entities.Proposal{}, ErrCoverNotFound
		}
		details.CoverImageURL = cover.URL
	}

	client := in.Client
	client.CNPJ = format.MaskCNPJ(client.CNPJ)

	p := entities.Proposal{
		Company:       company,
		Client:        client,
		Details:       details,
		BudgetOptions: budget.ComputeAll(cat.Products, in.BudgetOptions, budget.WithMissingPolicy(in.MissingPolicy)),
	}
	log.Printf("[proposal][usecase] composed client=%q options=%d", client.Name, len(p.BudgetOptions))
	return p, nil
}

// Export embeds every image of p and hands it to the document exporter.
func (u *ProposalUseCase) Export(ctx context.Context, p entities.Proposal, f interfaces.ExportFormat, fileName string) (interfaces.ExportedDocument, error) {
	if f != interfaces.ExportFormatPDF && f != interfaces.ExportFormatHTML {
		return interfaces.ExportedDocument{}, ErrInvalidExportFormat
	}
	fileName = exportFileName(fileName, p.Client.Name, f)

	resolved := u.assets.ResolveProposal(ctx, p)
	doc, err := u.exporter.Export(ctx, resolved, f, fileName)
	if err != nil {
		log.Printf("[proposal][usecase] export failed format=%s file=%s err=%v", f, fileName, err)
		return interfaces.ExportedDocument{}, err
	}
	return doc, nil
}

// exportFileName keeps the base name and forces the extension of the format.
// An empty name becomes "Proposta-<client>".
func exportFileName(name, client string, f interfaces.ExportFormat) string {
	name = strings.TrimSpace(filepath.Base(strings.TrimSpace(name)))
	if name == "" || name == "." || name == "/" {
		client = strings.Join(strings.Fields(client), "-")
		if client == "" {
			client = "Cliente"
		}
		name = "Proposta-" + client
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".html":
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name + "." + string(f)
}

func findProfile(ps []entities.SalesProfile, id int64) (entities.SalesProfile, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return entities.SalesProfile{}, false
}

func findCover(cs []entities.CoverImage, id int64) (entities.CoverImage, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return entities.CoverImage{}, false
}

func overlayCompany(base, override entities.Company) entities.Company {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&base.Name, override.Name)
	set(&base.SocialName, override.SocialName)
	set(&base.CNPJ, format.MaskCNPJ(override.CNPJ))
	set(&base.Address, override.Address)
	set(&base.Phone, format.MaskPhone(override.Phone))
	set(&base.Email, override.Email)
	set(&base.Logo, override.Logo)
	return base
}
