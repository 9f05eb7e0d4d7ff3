package usecase

import (
	"context"
	"errors"
	"testing"

	"planpaineis_propostas/internal/domain/entities"
	mock_interfaces "planpaineis_propostas/internal/usecase/interfaces/mocks"
	"planpaineis_propostas/pkg"

	"go.uber.org/mock/gomock"
)

type migrationMocks struct {
	legacy   *mock_interfaces.MockILegacyStore
	profiles *mock_interfaces.MockISalesProfileRepository
	products *mock_interfaces.MockIProductRepository
	covers   *mock_interfaces.MockICoverImageRepository
}

func newMigrationUseCase(t *testing.T) (*MigrationUseCase, migrationMocks) {
	ctrl := gomock.NewController(t)
	m := migrationMocks{
		legacy:   mock_interfaces.NewMockILegacyStore(ctrl),
		profiles: mock_interfaces.NewMockISalesProfileRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		covers:   mock_interfaces.NewMockICoverImageRepository(ctrl),
	}
	return NewMigrationUseCase(m.legacy, m.profiles, m.products, m.covers), m
}

func TestMigrationUseCase_AlreadyDone(t *testing.T) {
	uc, m := newMigrationUseCase(t)
	m.legacy.EXPECT().MigrationDone(gomock.Any()).Return(true, nil)

	report, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.State != MigrationDone || uc.State() != MigrationDone {
		t.Fatalf("expected done, got %v", report.State)
	}

	// A second run does not touch the store at all.
	if _, err := uc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMigrationUseCase_CopiesLocalRecords(t *testing.T) {
	uc, m := newMigrationUseCase(t)
	m.legacy.EXPECT().MigrationDone(gomock.Any()).Return(false, nil)
	m.legacy.EXPECT().SalesProfiles(gomock.Any()).Return([]entities.SalesProfile{{ID: 7, ProfileName: "Matriz"}}, nil)
	m.legacy.EXPECT().Products(gomock.Any()).Return([]entities.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)
	m.legacy.EXPECT().CoverImages(gomock.Any()).Return(nil, nil)

	gomock.InOrder(
		m.profiles.EXPECT().ListAll(gomock.Any()).Return(nil, nil),
		m.profiles.EXPECT().InsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ps []entities.SalesProfile) ([]entities.SalesProfile, error) {
				if len(ps) != 1 || ps[0].ID != 0 || ps[0].LegacyRef != "sales_profiles:7" {
					t.Fatalf("unexpected profiles: %+v", ps)
				}
				return ps, nil
			}),
		m.products.EXPECT().ListAll(gomock.Any()).Return(nil, nil),
		m.products.EXPECT().InsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ps []entities.Product) ([]entities.Product, error) {
				if len(ps) != 2 || ps[0].ID != 0 || ps[1].LegacyRef != "products:2" {
					t.Fatalf("unexpected products: %+v", ps)
				}
				return ps, nil
			}),
		m.legacy.EXPECT().MarkMigrationDone(gomock.Any()).Return(nil),
	)

	report, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.State != MigrationDone {
		t.Fatalf("expected done, got %v", report.State)
	}
	if report.Inserted["sales_profiles"] != 1 || report.Inserted["products"] != 2 || report.Inserted["cover_images"] != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestMigrationUseCase_EmptyMiddleCollection(t *testing.T) {
	uc, m := newMigrationUseCase(t)
	m.legacy.EXPECT().MigrationDone(gomock.Any()).Return(false, nil)
	m.legacy.EXPECT().SalesProfiles(gomock.Any()).Return([]entities.SalesProfile{{ID: 1, ProfileName: "Matriz"}, {ID: 2, ProfileName: "Filial"}}, nil)
	m.legacy.EXPECT().Products(gomock.Any()).Return([]entities.Product{}, nil)
	m.legacy.EXPECT().CoverImages(gomock.Any()).Return([]entities.CoverImage{{ID: 4, Name: "Azul"}, {ID: 5, Name: "Verde"}, {ID: 6, Name: "Preta"}}, nil)
	m.products.EXPECT().ListAll(gomock.Any()).Times(0)
	m.products.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Times(0)

	gomock.InOrder(
		m.profiles.EXPECT().ListAll(gomock.Any()).Return(nil, nil),
		m.profiles.EXPECT().InsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ps []entities.SalesProfile) ([]entities.SalesProfile, error) {
				if len(ps) != 2 || ps[0].ID != 0 || ps[1].ID != 0 {
					t.Fatalf("expected two profiles without local ids, got %+v", ps)
				}
				return ps, nil
			}),
		m.covers.EXPECT().ListAll(gomock.Any()).Return(nil, nil),
		m.covers.EXPECT().InsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cs []entities.CoverImage) ([]entities.CoverImage, error) {
				if len(cs) != 3 {
					t.Fatalf("expected three covers, got %d", len(cs))
				}
				for _, c := range cs {
					if c.ID != 0 {
						t.Fatalf("expected local id stripped, got %+v", c)
					}
				}
				return cs, nil
			}),
		m.legacy.EXPECT().MarkMigrationDone(gomock.Any()).Return(nil),
	)

	report, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Inserted["sales_profiles"] != 2 || report.Inserted["products"] != 0 || report.Inserted["cover_images"] != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestMigrationUseCase_FailureThenRetry(t *testing.T) {
	uc, m := newMigrationUseCase(t)
	localProfiles := []entities.SalesProfile{{ID: 7, ProfileName: "Matriz"}}
	localProducts := []entities.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	// First run: profiles copied, products insert fails.
	m.legacy.EXPECT().MigrationDone(gomock.Any()).Return(false, nil).Times(2)
	m.legacy.EXPECT().SalesProfiles(gomock.Any()).Return(localProfiles, nil).Times(2)
	m.legacy.EXPECT().Products(gomock.Any()).Return(localProducts, nil).Times(2)
	m.legacy.EXPECT().CoverImages(gomock.Any()).Return(nil, nil).Times(2)

	m.profiles.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.profiles.EXPECT().InsertMany(gomock.Any(), gomock.Len(1)).DoAndReturn(
		func(_ context.Context, ps []entities.SalesProfile) ([]entities.SalesProfile, error) { return ps, nil })
	m.products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.products.EXPECT().InsertMany(gomock.Any(), gomock.Len(2)).Return(nil, errors.New("network down"))

	_, err := uc.Run(context.Background())
	var me *pkg.MigrationError
	if !errors.As(err, &me) || me.Collection != "products" {
		t.Fatalf("expected products MigrationError, got %v", err)
	}
	if uc.State() != MigrationNotStarted {
		t.Fatalf("expected not started after failure, got %v", uc.State())
	}

	// Second run: the copied profile is recognised and not inserted again.
	m.profiles.EXPECT().ListAll(gomock.Any()).Return([]entities.SalesProfile{{ID: 31, LegacyRef: "sales_profiles:7"}}, nil)
	m.products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	m.products.EXPECT().InsertMany(gomock.Any(), gomock.Len(2)).DoAndReturn(
		func(_ context.Context, ps []entities.Product) ([]entities.Product, error) { return ps, nil })
	m.legacy.EXPECT().MarkMigrationDone(gomock.Any()).Return(nil)

	report, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Skipped["sales_profiles"] != 1 || report.Inserted["products"] != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if uc.State() != MigrationDone {
		t.Fatalf("expected done, got %v", uc.State())
	}
}

func TestMigrationUseCase_FlagWriteFailure(t *testing.T) {
	uc, m := newMigrationUseCase(t)
	m.legacy.EXPECT().MigrationDone(gomock.Any()).Return(false, nil)
	m.legacy.EXPECT().SalesProfiles(gomock.Any()).Return(nil, nil)
	m.legacy.EXPECT().Products(gomock.Any()).Return(nil, nil)
	m.legacy.EXPECT().CoverImages(gomock.Any()).Return(nil, nil)
	m.legacy.EXPECT().MarkMigrationDone(gomock.Any()).Return(errors.New("disk full"))

	_, err := uc.Run(context.Background())
	var me *pkg.MigrationError
	if !errors.As(err, &me) {
		t.Fatalf("expected MigrationError, got %v", err)
	}
	if uc.State() != MigrationNotStarted {
		t.Fatalf("expected not started, got %v", uc.State())
	}
}

func TestMigrationState_String(t *testing.T) {
	if MigrationInProgress.String() != "in_progress" || MigrationDone.String() != "done" || MigrationNotStarted.String() != "not_started" {
		t.Fatalf("unexpected state names")
	}
}
