package repository

import (
	"context"
	"time"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"
)

type coverImageItem struct {
	ID        int64  `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	URL       string `dynamodbav:"url"`
	CreatedAt string `dynamodbav:"created_at"`
	LegacyRef string `dynamodbav:"legacy_ref,omitempty"`
}

type CoverImageDynamoRepository struct {
	c *collection[entities.CoverImage, coverImageItem]
}

var _ interfaces.ICoverImageRepository = (*CoverImageDynamoRepository)(nil)

func NewCoverImageDynamoRepository(ddb DynamoAPI, ids *CounterAllocator, table string) *CoverImageDynamoRepository {
	return &CoverImageDynamoRepository{c: &collection[entities.CoverImage, coverImageItem]{
		ddb:   ddb,
		ids:   ids,
		table: table,
		name:  "cover_images",
		codec: itemCodec[entities.CoverImage, coverImageItem]{
			toItem: func(c entities.CoverImage) coverImageItem {
				return coverImageItem{ID: c.ID, Name: c.Name, URL: c.URL, CreatedAt: formatTime(c.CreatedAt), LegacyRef: c.LegacyRef}
			},
			fromItem: func(it coverImageItem) entities.CoverImage {
				return entities.CoverImage{ID: it.ID, Name: it.Name, URL: it.URL, CreatedAt: parseTime(it.CreatedAt), LegacyRef: it.LegacyRef}
			},
			id: func(c entities.CoverImage) int64 { return c.ID },
			stamp: func(c entities.CoverImage, id int64, now time.Time) entities.CoverImage {
				c.ID = id
				if c.CreatedAt.IsZero() {
					c.CreatedAt = now
				}
				return c
			},
		},
	}}
}

func (r *CoverImageDynamoRepository) ListAll(ctx context.Context) ([]entities.CoverImage, error) {
	return r.c.listAll(ctx)
}

func (r *CoverImageDynamoRepository) Insert(ctx context.Context, c entities.CoverImage) (entities.CoverImage, error) {
	out, err := r.c.insertMany(ctx, []entities.CoverImage{c})
	if err != nil {
		return entities.CoverImage{}, err
	}
	return out[0], nil
}

func (r *CoverImageDynamoRepository) InsertMany(ctx context.Context, cs []entities.CoverImage) ([]entities.CoverImage, error) {
	return r.c.insertMany(ctx, cs)
}

func (r *CoverImageDynamoRepository) Update(ctx context.Context, c entities.CoverImage) (entities.CoverImage, error) {
	return r.c.update(ctx, c)
}

func (r *CoverImageDynamoRepository) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, id)
}
