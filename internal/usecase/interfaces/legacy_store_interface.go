package interfaces

import (
	"context"
	"planpaineis_propostas/internal/domain/entities"
)

// ILegacyStore is the read-only local data left by the offline version of the
// app, plus the durable flag that marks the one-shot migration as done.
type ILegacyStore interface {
	SalesProfiles(ctx context.Context) ([]entities.SalesProfile, error)
	Products(ctx context.Context) ([]entities.Product, error)
	CoverImages(ctx context.Context) ([]entities.CoverImage, error)
	MigrationDone(ctx context.Context) (bool, error)
	MarkMigrationDone(ctx context.Context) error
}
