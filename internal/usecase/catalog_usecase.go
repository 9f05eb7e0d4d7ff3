package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"strings"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/domain/format"
	"planpaineis_propostas/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidPrice = errors.New("invalid price")
	ErrInvalidID    = errors.New("invalid id")
	ErrEmptyUpload  = errors.New("empty upload")
)

// Upload is a file sent along with a record; once stored its public URL
// replaces the record's image reference.
type Upload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// ICatalogUseCase manages sales profiles, products and cover images.
type ICatalogUseCase interface {
	FetchAll(ctx context.Context) (entities.Catalog, error)

	ListProfiles(ctx context.Context) ([]entities.SalesProfile, error)
	AddProfile(ctx context.Context, p entities.SalesProfile, logo *Upload) (entities.SalesProfile, error)
	UpdateProfile(ctx context.Context, p entities.SalesProfile, logo *Upload) (entities.SalesProfile, error)
	DeleteProfile(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]entities.Product, error)
	AddProduct(ctx context.Context, p entities.Product, image *Upload) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product, image *Upload) (entities.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCovers(ctx context.Context) ([]entities.CoverImage, error)
	AddCover(ctx context.Context, c entities.CoverImage, file *Upload) (entities.CoverImage, error)
	UpdateCover(ctx context.Context, c entities.CoverImage, file *Upload) (entities.CoverImage, error)
	DeleteCover(ctx context.Context, id int64) error

	UploadAsset(ctx context.Context, up Upload) (string, error)
}

type CatalogUseCase struct {
	profiles interfaces.ISalesProfileRepository
	products interfaces.IProductRepository
	covers   interfaces.ICoverImageRepository
	storage  interfaces.IAssetStorage
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	profiles interfaces.ISalesProfileRepository,
	products interfaces.IProductRepository,
	covers interfaces.ICoverImageRepository,
	storage interfaces.IAssetStorage,
) *CatalogUseCase {
	return &CatalogUseCase{profiles: profiles, products: products, covers: covers, storage: storage}
}

// FetchAll reads the three collections concurrently. Any failure fails the
// whole fetch and no partial catalog is returned.
func (u *CatalogUseCase) FetchAll(ctx context.Context) (entities.Catalog, error) {
	return fetchCatalog(ctx, u.profiles, u.products, u.covers)
}

func fetchCatalog(
	ctx context.Context,
	profiles interfaces.ISalesProfileRepository,
	products interfaces.IProductRepository,
	covers interfaces.ICoverImageRepository,
) (entities.Catalog, error) {
	var cat entities.Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cat.SalesProfiles, err = profiles.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		cat.Products, err = products.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		cat.CoverImages, err = covers.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[catalog][usecase] fetch failed err=%v", err)
		return entities.Catalog{}, err
	}
	return cat, nil
}

func (u *CatalogUseCase) ListProfiles(ctx context.Context) ([]entities.SalesProfile, error) {
	return u.profiles.ListAll(ctx)
}

func (u *CatalogUseCase) AddProfile(ctx context.Context, p entities.SalesProfile, logo *Upload) (entities.SalesProfile, error) {
	p, err := u.prepareProfile(ctx, p, logo)
	if err != nil {
		return entities.SalesProfile{}, err
	}
	p.ID = 0
	return u.profiles.Insert(ctx, p)
}

func (u *CatalogUseCase) UpdateProfile(ctx context.Context, p entities.SalesProfile, logo *Upload) (entities.SalesProfile, error) {
	if p.ID <= 0 {
		return entities.SalesProfile{}, ErrInvalidID
	}
	p, err := u.prepareProfile(ctx, p, logo)
	if err != nil {
		return entities.SalesProfile{}, err
	}
	return u.profiles.Update(ctx, p)
}

func (u *CatalogUseCase) prepareProfile(ctx context.Context, p entities.SalesProfile, logo *Upload) (entities.SalesProfile, error) {
	p.ProfileName = strings.TrimSpace(p.ProfileName)
	p.Name = strings.TrimSpace(p.Name)
	if p.ProfileName == "" || p.Name == "" {
		return entities.SalesProfile{}, ErrInvalidName
	}
	p.CNPJ = format.MaskCNPJ(p.CNPJ)
	p.Phone = format.MaskPhone(p.Phone)

	// The upload comes first so a failed upload leaves nothing half-written.
	if logo != nil {
		url, err := u.UploadAsset(ctx, *logo)
		if err != nil {
			return entities.SalesProfile{}, err
		}
		p.Logo = url
	}
	return p, nil
}

func (u *CatalogUseCase) DeleteProfile(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return u.profiles.Delete(ctx, id)
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.products.ListAll(ctx)
}

func (u *CatalogUseCase) AddProduct(ctx context.Context, p entities.Product, image *Upload) (entities.Product, error) {
	p, err := u.prepareProduct(ctx, p, image)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = 0
	return u.products.Insert(ctx, p)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p entities.Product, image *Upload) (entities.Product, error) {
	if p.ID <= 0 {
		return entities.Product{}, ErrInvalidID
	}
	p, err := u.prepareProduct(ctx, p, image)
	if err != nil {
		return entities.Product{}, err
	}
	return u.products.Update(ctx, p)
}

func (u *CatalogUseCase) prepareProduct(ctx context.Context, p entities.Product, image *Upload) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidName
	}
	if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return entities.Product{}, ErrInvalidPrice
	}
	p = p.Clone()
	if image != nil {
		url, err := u.UploadAsset(ctx, *image)
		if err != nil {
			return entities.Product{}, err
		}
		p.ImageURL = url
	}
	return p, nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) ListCovers(ctx context.Context) ([]entities.CoverImage, error) {
	return u.covers.ListAll(ctx)
}

func (u *CatalogUseCase) AddCover(ctx context.Context, c entities.CoverImage, file *Upload) (entities.CoverImage, error) {
	c, err := u.prepareCover(ctx, c, file)
	if err != nil {
		return entities.CoverImage{}, err
	}
	c.ID = 0
	return u.covers.Insert(ctx, c)
}

func (u *CatalogUseCase) UpdateCover(ctx context.Context, c entities.CoverImage, file *Upload) (entities.CoverImage, error) {
	if c.ID <= 0 {
		return entities.CoverImage{}, ErrInvalidID
	}
	c, err := u.prepareCover(ctx, c, file)
	if err != nil {
		return entities.CoverImage{}, err
	}
	return u.covers.Update(ctx, c)
}

func (u *CatalogUseCase) prepareCover(ctx context.Context, c entities.CoverImage, file *Upload) (entities.CoverImage, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.CoverImage{}, ErrInvalidName
	}
	if file != nil {
		url, err := u.UploadAsset(ctx, *file)
		if err != nil {
			return entities.CoverImage{}, err
		}
		c.URL = url
	}
	return c, nil
}

func (u *CatalogUseCase) DeleteCover(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return u.covers.Delete(ctx, id)
}

func (u *CatalogUseCase) UploadAsset(ctx context.Context, up Upload) (string, error) {
	if up.Body == nil || strings.TrimSpace(up.FileName) == "" {
		return "", ErrEmptyUpload
	}
	url, err := u.storage.Upload(ctx, up.FileName, up.ContentType, up.Body)
	if err != nil {
		log.Printf("[catalog][usecase] upload failed file=%s err=%v", up.FileName, err)
		return "", err
	}
	return url, nil
}
