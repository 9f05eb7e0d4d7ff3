package interfaces

import (
	"context"
	"planpaineis_propostas/internal/domain/entities"
)

// ISalesProfileRepository abstracts the sales_profiles collection.
//
// Ids and created_at are assigned by the store on insert; any id carried by the
// input record is ignored. No caching and no retries happen behind this contract.

type ISalesProfileRepository interface {
	ListAll(ctx context.Context) ([]entities.SalesProfile, error)
	Insert(ctx context.Context, p entities.SalesProfile) (entities.SalesProfile, error)
	InsertMany(ctx context.Context, ps []entities.SalesProfile) ([]entities.SalesProfile, error)
	Update(ctx context.Context, p entities.SalesProfile) (entities.SalesProfile, error)
	Delete(ctx context.Context, id int64) error
}
