package interfaces

import (
	"context"
	"planpaineis_propostas/internal/domain/entities"
)

// IProductRepository abstracts the products collection (the catalog).

type IProductRepository interface {
	ListAll(ctx context.Context) ([]entities.Product, error)
	Insert(ctx context.Context, p entities.Product) (entities.Product, error)
	InsertMany(ctx context.Context, ps []entities.Product) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id int64) error
}
