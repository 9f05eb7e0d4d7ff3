// Package app wires the configured adapters into the use cases shared by the
// HTTP server and the command line tool.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/redis/go-redis/v9"

	"planpaineis_propostas/internal/adapter/document"
	"planpaineis_propostas/internal/adapter/persistence/gormrepo"
	"planpaineis_propostas/internal/adapter/persistence/legacy"
	"planpaineis_propostas/internal/adapter/persistence/repository"
	"planpaineis_propostas/internal/adapter/storage"
	"planpaineis_propostas/internal/assets"
	"planpaineis_propostas/internal/infrastructure/browser"
	"planpaineis_propostas/internal/infrastructure/config"
	"planpaineis_propostas/internal/infrastructure/database"
	"planpaineis_propostas/internal/infrastructure/pdf"
	"planpaineis_propostas/internal/renderer"
	"planpaineis_propostas/internal/usecase"
	"planpaineis_propostas/internal/usecase/interfaces"
)

type App struct {
	Config    config.Config
	Catalog   *usecase.CatalogUseCase
	Migration *usecase.MigrationUseCase
	// Proposal is nil when built WithoutRendering.
	Proposal *usecase.ProposalUseCase
	Legacy   *legacy.Store

	closers []func() error
}

type options struct {
	rendering bool
}

type Option func(*options)

// WithoutRendering skips the headless browser; proposals cannot be exported.
func WithoutRendering() Option {
	return func(o *options) { o.rendering = false }
}

type stores struct {
	profiles interfaces.ISalesProfileRepository
	products interfaces.IProductRepository
	covers   interfaces.ICoverImageRepository
}

// Build connects every adapter cfg describes. Close releases them.
func Build(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	o := options{rendering: true}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg}
	if err := a.build(ctx, o); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, o options) error {
	cfg := a.Config

	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return err
	}

	st, err := a.openStores(cfg, awsCfg)
	if err != nil {
		return err
	}

	s3Client := database.ConnectS3(awsCfg, cfg)
	assetStorage := storage.NewS3AssetStorage(s3Client, cfg.AssetsBucket, cfg.AWSRegion, cfg.AssetsPublicBaseURL)

	legacyStore, err := legacy.Open(cfg.LegacyDBPath)
	if err != nil {
		return fmt.Errorf("open legacy store: %w", err)
	}
	a.Legacy = legacyStore
	a.closers = append(a.closers, legacyStore.Close)

	a.Catalog = usecase.NewCatalogUseCase(st.profiles, st.products, st.covers, assetStorage)
	a.Migration = usecase.NewMigrationUseCase(legacyStore, st.profiles, st.products, st.covers)

	if !o.rendering {
		log.Printf("[app][bootstrap] rendering disabled driver=%s", cfg.StoreDriver)
		return nil
	}

	resolver := assets.NewResolver(assets.NewHTTPLoader(nil), a.assetCache(ctx, cfg))

	b := browser.New(cfg.BrowserBin)
	b.Start()
	a.closers = append(a.closers, b.Close)

	r := renderer.New(
		browser.NewRasterizer(b),
		pdf.NewAssembler(),
		renderer.NewLocalSink(cfg.RenderOutputDir),
		renderer.WithCapabilityTimeout(cfg.RenderCapabilityTimeout),
	)
	exporter := document.NewExporter(b, r)
	a.Proposal = usecase.NewProposalUseCase(st.profiles, st.products, st.covers, resolver, exporter)

	log.Printf("[app][bootstrap] ready driver=%s output=%s", cfg.StoreDriver, cfg.RenderOutputDir)
	return nil
}

func (a *App) openStores(cfg config.Config, awsCfg aws.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			return stores{}, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		if err := gormrepo.AutoMigrate(db); err != nil {
			return stores{}, fmt.Errorf("auto migrate: %w", err)
		}
		return stores{
			profiles: gormrepo.NewSalesProfileRepository(db),
			products: gormrepo.NewProductRepository(db),
			covers:   gormrepo.NewCoverImageRepository(db),
		}, nil
	default:
		ddb := database.ConnectDynamoDB(awsCfg)
		ids := repository.NewCounterAllocator(ddb, cfg.CountersTable)
		return stores{
			profiles: repository.NewSalesProfileDynamoRepository(ddb, ids, cfg.ProfilesTable),
			products: repository.NewProductDynamoRepository(ddb, ids, cfg.ProductsTable),
			covers:   repository.NewCoverImageDynamoRepository(ddb, ids, cfg.CoversTable),
		}, nil
	}
}

// assetCache prefers Redis when configured and reachable.
func (a *App) assetCache(ctx context.Context, cfg config.Config) assets.Cache {
	if cfg.AssetCacheRedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.AssetCacheRedisAddr})
		rc := assets.NewRedisCache(rdb, "", cfg.AssetCacheTTL)
		err := rc.Ping(ctx)
		if err == nil {
			a.closers = append(a.closers, rdb.Close)
			return rc
		}
		log.Printf("[app][bootstrap] redis asset cache unavailable addr=%s err=%v", cfg.AssetCacheRedisAddr, err)
		_ = rdb.Close()
	}
	if cfg.AssetCacheMaxEntries > 0 {
		return assets.NewMemoryCache(assets.LRU(cfg.AssetCacheMaxEntries))
	}
	return assets.NewMemoryCache(assets.Unbounded())
}

// Close releases adapters in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
