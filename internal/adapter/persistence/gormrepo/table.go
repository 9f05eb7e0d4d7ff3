// Package gormrepo stores the collections in Postgres through gorm.
package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"
)

// table is one collection mapped to a gorm model M.
type table[E any, M any] struct {
	db        *gorm.DB
	name      string
	toModel   func(E) M
	fromModel func(M) E
	idOf      func(E) int64
	clearID   func(*M)
}

func (t *table[E, M]) listAll(ctx context.Context) ([]E, error) {
	var ms []M
	if err := t.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, pkg.NewStoreError("list", t.name, err)
	}
	out := make([]E, len(ms))
	for i, m := range ms {
		out[i] = t.fromModel(m)
	}
	return out, nil
}

// insertMany writes all records in one statement; ids come from the serial column.
func (t *table[E, M]) insertMany(ctx context.Context, es []E) ([]E, error) {
	if len(es) == 0 {
		return []E{}, nil
	}
	ms := make([]M, len(es))
	for i, e := range es {
		ms[i] = t.toModel(e)
		t.clearID(&ms[i])
	}
	if err := t.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return nil, pkg.NewStoreError("insert", t.name, err)
	}
	out := make([]E, len(ms))
	for i, m := range ms {
		out[i] = t.fromModel(m)
	}
	return out, nil
}

func (t *table[E, M]) update(ctx context.Context, e E) (E, error) {
	var zero E
	m := t.toModel(e)
	res := t.updates(t.db.WithContext(ctx), &m)
	if res.Error != nil {
		return zero, pkg.NewStoreError("update", t.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return zero, pkg.NewStoreError("update", t.name, interfaces.ErrRecordNotFound)
	}

	var saved M
	if err := t.db.WithContext(ctx).First(&saved, t.idOf(e)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = interfaces.ErrRecordNotFound
		}
		return zero, pkg.NewStoreError("update", t.name, err)
	}
	return t.fromModel(saved), nil
}

// updates writes every column except the ones owned by the store (id,
// created_at) or by the migration (legacy_ref).
func (t *table[E, M]) updates(db *gorm.DB, m *M) *gorm.DB {
	return db.Model(m).Select("*").Omit("id", "created_at", "legacy_ref").Updates(m)
}

func (t *table[E, M]) delete(ctx context.Context, id int64) error {
	res := t.db.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return pkg.NewStoreError("delete", t.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return pkg.NewStoreError("delete", t.name, interfaces.ErrRecordNotFound)
	}
	return nil
}
