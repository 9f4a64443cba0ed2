package app

import (
	"context"
	"fmt"
	"log"

	"smart-hire/internal/config"
	"smart-hire/internal/database"
	"smart-hire/internal/database/migration"
	dbpostgres "smart-hire/internal/database/postgres"
	"smart-hire/internal/database/seeder"
	"smart-hire/internal/domain/matching"
	"smart-hire/internal/infrastructure/blob"
	"smart-hire/internal/infrastructure/cache"
	"smart-hire/internal/pipeline"
	"smart-hire/internal/repository"
	"smart-hire/internal/usecase"
	"smart-hire/internal/ws"
)

const ingestWorkers = 4

// Container owns every long-lived dependency of the process.
type Container struct {
	Config config.Config
	Logger *log.Logger

	// DB is nil with the memory store driver.
	DB        database.DB
	Store     repository.Store
	Cache     *cache.Redis
	Blobs     blob.Store
	Hub       *ws.Hub
	Workspace *usecase.Workspace

	stopHub context.CancelFunc
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	if err := c.openStore(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	if cfg.Store.SeedOnStart {
		r := seeder.Runner{Seeders: []seeder.Seeder{seeder.SampleData{}}}
		if err := r.Run(ctx, c.Store); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	blobs, err := blob.New(ctx, cfg.Blob)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("blob store: %w", err)
	}
	c.Blobs = blobs

	gen, err := matching.NewGenerator(cfg.Matching.Strategy)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	hubCtx, stop := context.WithCancel(context.Background())
	c.stopHub = stop
	c.Hub = ws.NewHub(logger)
	go c.Hub.Run(hubCtx)

	c.Workspace = usecase.NewWorkspace(usecase.WorkspaceDeps{
		Store:     c.Store,
		Generator: gen,
		Ingest:    pipeline.NewResumeIngest(blobs, ingestWorkers, logger),
		Cache:     c.Cache,
		Notifier:  c.Hub,
		Logger:    logger,
	})
	if err := c.Workspace.Load(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("load workspace: %w", err)
	}

	return c, nil
}

func (c *Container) openStore(ctx context.Context) error {
	switch c.Config.Store.Driver {
	case config.StoreDriverMemory:
		c.Store = repository.NewMemoryStore()
		c.Logger.Printf("store driver=memory status=ready")
		return nil
	case config.StoreDriverPostgres, "":
	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}

	db, err := dbpostgres.Connect(ctx, c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	c.Store = repository.NewPostgresStore(db)
	c.Logger.Printf("store driver=postgres status=ready")
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Store != nil {
		return c.Store.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
