package usecase

import (
	"context"
	"log"
	"sync"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"
)

type MigrationState int

const (
	MigrationNotStarted MigrationState = iota
	MigrationInProgress
	MigrationDone
)

func (s MigrationState) String() string {
	switch s {
	case MigrationInProgress:
		return "in_progress"
	case MigrationDone:
		return "done"
	default:
		return "not_started"
	}
}

// MigrationReport counts, per collection, the records copied and the records
// skipped because an earlier partial run had already copied them.
type MigrationReport struct {
	State    MigrationState `json:"-"`
	Inserted map[string]int `json:"inserted"`
	Skipped  map[string]int `json:"skipped"`
}

// IMigrationUseCase copies the offline app's local records to the remote store once.
type IMigrationUseCase interface {
	Run(ctx context.Context) (MigrationReport, error)
	State() MigrationState
}

type MigrationUseCase struct {
	legacy   interfaces.ILegacyStore
	profiles interfaces.ISalesProfileRepository
	products interfaces.IProductRepository
	covers   interfaces.ICoverImageRepository

	run   sync.Mutex
	mu    sync.RWMutex
	state MigrationState
}

var _ IMigrationUseCase = (*MigrationUseCase)(nil)

func NewMigrationUseCase(
	legacy interfaces.ILegacyStore,
	profiles interfaces.ISalesProfileRepository,
	products interfaces.IProductRepository,
	covers interfaces.ICoverImageRepository,
) *MigrationUseCase {
	return &MigrationUseCase{legacy: legacy, profiles: profiles, products: products, covers: covers}
}

func (u *MigrationUseCase) State() MigrationState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state
}

func (u *MigrationUseCase) setState(s MigrationState) {
	u.mu.Lock()
	u.state = s
	u.mu.Unlock()
}

// Run performs NotStarted -> InProgress -> Done. Collections are copied in
// order: sales profiles, products, cover images. On any failure the durable
// flag stays unset, the state returns to NotStarted and the next Run retries;
// records already copied carry a LegacyRef and are not copied twice.
func (u *MigrationUseCase) Run(ctx context.Context) (MigrationReport, error) {
	u.run.Lock()
	defer u.run.Unlock()

	report := MigrationReport{Inserted: map[string]int{}, Skipped: map[string]int{}}
	if u.State() == MigrationDone {
		report.State = MigrationDone
		return report, nil
	}

	done, err := u.legacy.MigrationDone(ctx)
	if err != nil {
		return u.fail(report, "local_storage", err)
	}
	if done {
		u.setState(MigrationDone)
		report.State = MigrationDone
		return report, nil
	}

	u.setState(MigrationInProgress)
	log.Printf("[migration][usecase] start")

	profiles, err := u.legacy.SalesProfiles(ctx)
	if err != nil {
		return u.fail(report, entities.CollectionSalesProfiles, err)
	}
	products, err := u.legacy.Products(ctx)
	if err != nil {
		return u.fail(report, entities.CollectionProducts, err)
	}
	covers, err := u.legacy.CoverImages(ctx)
	if err != nil {
		return u.fail(report, entities.CollectionCoverImages, err)
	}

	if err := u.migrateProfiles(ctx, profiles, &report); err != nil {
		return u.fail(report, entities.CollectionSalesProfiles, err)
	}
	if err := u.migrateProducts(ctx, products, &report); err != nil {
		return u.fail(report, entities.CollectionProducts, err)
	}
	if err := u.migrateCovers(ctx, covers, &report); err != nil {
		return u.fail(report, entities.CollectionCoverImages, err)
	}

	if err := u.legacy.MarkMigrationDone(ctx); err != nil {
		return u.fail(report, "local_storage", err)
	}
	u.setState(MigrationDone)
	report.State = MigrationDone
	log.Printf("[migration][usecase] done inserted=%v skipped=%v", report.Inserted, report.Skipped)
	return report, nil
}

func (u *MigrationUseCase) fail(report MigrationReport, collection string, err error) (MigrationReport, error) {
	u.setState(MigrationNotStarted)
	report.State = MigrationNotStarted
	log.Printf("[migration][usecase] failed collection=%s err=%v", collection, err)
	return report, &pkg.MigrationError{Collection: collection, Err: err}
}

func (u *MigrationUseCase) migrateProfiles(ctx context.Context, local []entities.SalesProfile, report *MigrationReport) error {
	if len(local) == 0 {
		return nil
	}
	remote, err := u.profiles.ListAll(ctx)
	if err != nil {
		return err
	}
	copied := make(map[string]bool, len(remote))
	for _, r := range remote {
		if r.LegacyRef != "" {
			copied[r.LegacyRef] = true
		}
	}

	pending := make([]entities.SalesProfile, 0, len(local))
	for _, p := range local {
		ref := entities.LegacyRef(entities.CollectionSalesProfiles, p.ID)
		if copied[ref] {
			report.Skipped[entities.CollectionSalesProfiles]++
			continue
		}
		p.ID = 0
		p.LegacyRef = ref
		pending = append(pending, p)
	}
	if len(pending) == 0 {
		return nil
	}
	inserted, err := u.profiles.InsertMany(ctx, pending)
	if err != nil {
		return err
	}
	report.Inserted[entities.CollectionSalesProfiles] = len(inserted)
	return nil
}

func (u *MigrationUseCase) migrateProducts(ctx context.Context, local []entities.Product, report *MigrationReport) error {
	if len(local) == 0 {
		return nil
	}
	remote, err := u.products.ListAll(ctx)
	if err != nil {
		return err
	}
	copied := make(map[string]bool, len(remote))
	for _, r := range remote {
		if r.LegacyRef != "" {
			copied[r.LegacyRef] = true
		}
	}

	pending := make([]entities.Product, 0, len(local))
	for _, p := range local {
		ref := entities.LegacyRef(entities.CollectionProducts, p.ID)
		if copied[ref] {
			report.Skipped[entities.CollectionProducts]++
			continue
		}
		p = p.Clone()
		p.ID = 0
		p.LegacyRef = ref
		pending = append(pending, p)
	}
	if len(pending) == 0 {
		return nil
	}
	inserted, err := u.products.InsertMany(ctx, pending)
	if err != nil {
		return err
	}
	report.Inserted[entities.CollectionProducts] = len(inserted)
	return nil
}

func (u *MigrationUseCase) migrateCovers(ctx context.Context, local []entities.CoverImage, report *MigrationReport) error {
	if len(local) == 0 {
		return nil
	}
	remote, err := u.covers.ListAll(ctx)
	if err != nil {
		return err
	}
	copied := make(map[string]bool, len(remote))
	for _, r := range remote {
		if r.LegacyRef != "" {
			copied[r.LegacyRef] = true
		}
	}

	pending := make([]entities.CoverImage, 0, len(local))
	for _, c := range local {
		ref := entities.LegacyRef(entities.CollectionCoverImages, c.ID)
		if copied[ref] {
			report.Skipped[entities.CollectionCoverImages]++
			continue
		}
		c.ID = 0
		c.LegacyRef = ref
		pending = append(pending, c)
	}
	if len(pending) == 0 {
		return nil
	}
	inserted, err := u.covers.InsertMany(ctx, pending)
	if err != nil {
		return err
	}
	report.Inserted[entities.CollectionCoverImages] = len(inserted)
	return nil
}
