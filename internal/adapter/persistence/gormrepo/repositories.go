package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"
)

// AutoMigrate creates or updates the three collection tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

type SalesProfileRepository struct {
	t *table[entities.SalesProfile, salesProfileModel]
}

var _ interfaces.ISalesProfileRepository = (*SalesProfileRepository)(nil)

func NewSalesProfileRepository(db *gorm.DB) *SalesProfileRepository {
	return &SalesProfileRepository{t: &table[entities.SalesProfile, salesProfileModel]{
		db:        db,
		name:      "sales_profiles",
		toModel:   toSalesProfileModel,
		fromModel: fromSalesProfileModel,
		idOf:      func(p entities.SalesProfile) int64 { return p.ID },
		clearID:   func(m *salesProfileModel) { m.ID = 0 },
	}}
}

func (r *SalesProfileRepository) ListAll(ctx context.Context) ([]entities.SalesProfile, error) {
	return r.t.listAll(ctx)
}

func (r *SalesProfileRepository) Insert(ctx context.Context, p entities.SalesProfile) (entities.SalesProfile, error) {
	out, err := r.t.insertMany(ctx, []entities.SalesProfile{p})
	if err != nil {
		return entities.SalesProfile{}, err
	}
	return out[0], nil
}

func (r *SalesProfileRepository) InsertMany(ctx context.Context, ps []entities.SalesProfile) ([]entities.SalesProfile, error) {
	return r.t.insertMany(ctx, ps)
}

func (r *SalesProfileRepository) Update(ctx context.Context, p entities.SalesProfile) (entities.SalesProfile, error) {
	return r.t.update(ctx, p)
}

func (r *SalesProfileRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

type ProductRepository struct {
	t *table[entities.Product, productModel]
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{t: &table[entities.Product, productModel]{
		db:        db,
		name:      "products",
		toModel:   toProductModel,
		fromModel: fromProductModel,
		idOf:      func(p entities.Product) int64 { return p.ID },
		clearID:   func(m *productModel) { m.ID = 0 },
	}}
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	return r.t.listAll(ctx)
}

func (r *ProductRepository) Insert(ctx context.Context, p entities.Product) (entities.Product, error) {
	out, err := r.t.insertMany(ctx, []entities.Product{p})
	if err != nil {
		return entities.Product{}, err
	}
	return out[0], nil
}

func (r *ProductRepository) InsertMany(ctx context.Context, ps []entities.Product) ([]entities.Product, error) {
	return r.t.insertMany(ctx, ps)
}

func (r *ProductRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	return r.t.update(ctx, p)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

type CoverImageRepository struct {
	t *table[entities.CoverImage, coverImageModel]
}

var _ interfaces.ICoverImageRepository = (*CoverImageRepository)(nil)

func NewCoverImageRepository(db *gorm.DB) *CoverImageRepository {
	return &CoverImageRepository{t: &table[entities.CoverImage, coverImageModel]{
		db:        db,
		name:      "cover_images",
		toModel:   toCoverImageModel,
		fromModel: fromCoverImageModel,
		idOf:      func(c entities.CoverImage) int64 { return c.ID },
		clearID:   func(m *coverImageModel) { m.ID = 0 },
	}}
}

func (r *CoverImageRepository) ListAll(ctx context.Context) ([]entities.CoverImage, error) {
	return r.t.listAll(ctx)
}

func (r *CoverImageRepository) Insert(ctx context.Context, c entities.CoverImage) (entities.CoverImage, error) {
	out, err := r.t.insertMany(ctx, []entities.CoverImage{c})
	if err != nil {
		return entities.CoverImage{}, err
	}
	return out[0], nil
}

func (r *CoverImageRepository) InsertMany(ctx context.Context, cs []entities.CoverImage) ([]entities.CoverImage, error) {
	return r.t.insertMany(ctx, cs)
}

func (r *CoverImageRepository) Update(ctx context.Context, c entities.CoverImage) (entities.CoverImage, error) {
	return r.t.update(ctx, c)
}

func (r *CoverImageRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
