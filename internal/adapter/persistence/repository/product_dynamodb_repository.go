package repository

import (
	"context"
	"time"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"
)

type productDetailItem struct {
	Label string `dynamodbav:"label"`
	Value string `dynamodbav:"value"`
}

type productItem struct {
	ID               int64               `dynamodbav:"id"`
	Name             string              `dynamodbav:"name"`
	Details          []productDetailItem `dynamodbav:"details"`
	Price            string              `dynamodbav:"price"`
	PanelCount       int                 `dynamodbav:"panel_count"`
	InsertionsPerDay int                 `dynamodbav:"insertions_per_day"`
	ImageURL         string              `dynamodbav:"image_url"`
	Observations     string              `dynamodbav:"observations"`
	CreatedAt        string              `dynamodbav:"created_at"`
	LegacyRef        string              `dynamodbav:"legacy_ref,omitempty"`
}

// ProductDynamoRepository persists the catalog in DynamoDB.
type ProductDynamoRepository struct {
	c *collection[entities.Product, productItem]
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, ids *CounterAllocator, table string) *ProductDynamoRepository {
	return &ProductDynamoRepository{c: &collection[entities.Product, productItem]{
		ddb:   ddb,
		ids:   ids,
		table: table,
		name:  "products",
		codec: itemCodec[entities.Product, productItem]{
			toItem:   toProductItem,
			fromItem: fromProductItem,
			id:       func(p entities.Product) int64 { return p.ID },
			stamp: func(p entities.Product, id int64, now time.Time) entities.Product {
				p.ID = id
				if p.CreatedAt.IsZero() {
					p.CreatedAt = now
				}
				return p
			},
		},
	}}
}

func (r *ProductDynamoRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	return r.c.listAll(ctx)
}

func (r *ProductDynamoRepository) Insert(ctx context.Context, p entities.Product) (entities.Product, error) {
	out, err := r.c.insertMany(ctx, []entities.Product{p})
	if err != nil {
		return entities.Product{}, err
	}
	return out[0], nil
}

func (r *ProductDynamoRepository) InsertMany(ctx context.Context, ps []entities.Product) ([]entities.Product, error) {
	return r.c.insertMany(ctx, ps)
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	return r.c.update(ctx, p)
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, id)
}

func toProductItem(p entities.Product) productItem {
	details := make([]productDetailItem, len(p.Details))
	for i, d := range p.Details {
		details[i] = productDetailItem{Label: d.Label, Value: d.Value}
	}
	return productItem{
		ID:               p.ID,
		Name:             p.Name,
		Details:          details,
		Price:            floatToString(p.Price),
		PanelCount:       p.PanelCount,
		InsertionsPerDay: p.InsertionsPerDay,
		ImageURL:         p.ImageURL,
		Observations:     p.Observations,
		CreatedAt:        formatTime(p.CreatedAt),
		LegacyRef:        p.LegacyRef,
	}
}

func fromProductItem(it productItem) entities.Product {
	details := make([]entities.ProductDetail, len(it.Details))
	for i, d := range it.Details {
		details[i] = entities.ProductDetail{Label: d.Label, Value: d.Value}
	}
	return entities.Product{
		ID:               it.ID,
		Name:             it.Name,
		Details:          details,
		Price:            stringToFloat(it.Price),
		PanelCount:       it.PanelCount,
		InsertionsPerDay: it.InsertionsPerDay,
		ImageURL:         it.ImageURL,
		Observations:     it.Observations,
		CreatedAt:        parseTime(it.CreatedAt),
		LegacyRef:        it.LegacyRef,
	}
}
