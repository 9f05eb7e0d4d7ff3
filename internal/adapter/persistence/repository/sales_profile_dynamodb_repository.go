package repository

import (
	"context"
	"time"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"
)

type salesProfileItem struct {
	ID          int64  `dynamodbav:"id"`
	ProfileName string `dynamodbav:"profile_name"`
	Name        string `dynamodbav:"name"`
	SocialName  string `dynamodbav:"social_name"`
	CNPJ        string `dynamodbav:"cnpj"`
	Address     string `dynamodbav:"address"`
	Phone       string `dynamodbav:"phone"`
	Email       string `dynamodbav:"email"`
	Logo        string `dynamodbav:"logo"`
	CreatedAt   string `dynamodbav:"created_at"`
	LegacyRef   string `dynamodbav:"legacy_ref,omitempty"`
}

// SalesProfileDynamoRepository persists SalesProfile entities in DynamoDB.
type SalesProfileDynamoRepository struct {
	c *collection[entities.SalesProfile, salesProfileItem]
}

var _ interfaces.ISalesProfileRepository = (*SalesProfileDynamoRepository)(nil)

func NewSalesProfileDynamoRepository(ddb DynamoAPI, ids *CounterAllocator, table string) *SalesProfileDynamoRepository {
	return &SalesProfileDynamoRepository{c: &collection[entities.SalesProfile, salesProfileItem]{
		ddb:   ddb,
		ids:   ids,
		table: table,
		name:  "sales_profiles",
		codec: itemCodec[entities.SalesProfile, salesProfileItem]{
			toItem:   toSalesProfileItem,
			fromItem: fromSalesProfileItem,
			id:       func(p entities.SalesProfile) int64 { return p.ID },
			stamp: func(p entities.SalesProfile, id int64, now time.Time) entities.SalesProfile {
				p.ID = id
				if p.CreatedAt.IsZero() {
					p.CreatedAt = now
				}
				return p
			},
		},
	}}
}

func (r *SalesProfileDynamoRepository) ListAll(ctx context.Context) ([]entities.SalesProfile, error) {
	return r.c.listAll(ctx)
}

func (r *SalesProfileDynamoRepository) Insert(ctx context.Context, p entities.SalesProfile) (entities.SalesProfile, error) {
	out, err := r.c.insertMany(ctx, []entities.SalesProfile{p})
	if err != nil {
		return entities.SalesProfile{}, err
	}
	return out[0], nil
}

func (r *SalesProfileDynamoRepository) InsertMany(ctx context.Context, ps []entities.SalesProfile) ([]entities.SalesProfile, error) {
	return r.c.insertMany(ctx, ps)
}

func (r *SalesProfileDynamoRepository) Update(ctx context.Context, p entities.SalesProfile) (entities.SalesProfile, error) {
	return r.c.update(ctx, p)
}

func (r *SalesProfileDynamoRepository) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, id)
}

func toSalesProfileItem(p entities.SalesProfile) salesProfileItem {
	return salesProfileItem{
		ID:          p.ID,
		ProfileName: p.ProfileName,
		Name:        p.Name,
		SocialName:  p.SocialName,
		CNPJ:        p.CNPJ,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Logo:        p.Logo,
		CreatedAt:   formatTime(p.CreatedAt),
		LegacyRef:   p.LegacyRef,
	}
}

func fromSalesProfileItem(it salesProfileItem) entities.SalesProfile {
	return entities.SalesProfile{
		ID:          it.ID,
		ProfileName: it.ProfileName,
		Name:        it.Name,
		SocialName:  it.SocialName,
		CNPJ:        it.CNPJ,
		Address:     it.Address,
		Phone:       it.Phone,
		Email:       it.Email,
		Logo:        it.Logo,
		CreatedAt:   parseTime(it.CreatedAt),
		LegacyRef:   it.LegacyRef,
	}
}
