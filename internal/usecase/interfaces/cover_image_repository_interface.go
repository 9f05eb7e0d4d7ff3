package interfaces

import (
	"context"
	"planpaineis_propostas/internal/domain/entities"
)

// ICoverImageRepository abstracts the cover_images collection.

type ICoverImageRepository interface {
	ListAll(ctx context.Context) ([]entities.CoverImage, error)
	Insert(ctx context.Context, c entities.CoverImage) (entities.CoverImage, error)
	InsertMany(ctx context.Context, cs []entities.CoverImage) ([]entities.CoverImage, error)
	Update(ctx context.Context, c entities.CoverImage) (entities.CoverImage, error)
	Delete(ctx context.Context, id int64) error
}
