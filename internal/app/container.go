package app

import (
	"context"
	"fmt"

	"github.com/Rhaast00/vervappweb/internal/api"
	"github.com/Rhaast00/vervappweb/internal/config"
	"github.com/Rhaast00/vervappweb/internal/service/ai"
	"github.com/Rhaast00/vervappweb/internal/service/analyzer"
	"github.com/Rhaast00/vervappweb/internal/service/cache"
	"github.com/Rhaast00/vervappweb/internal/service/credentials"
	"github.com/Rhaast00/vervappweb/internal/service/database"
	"github.com/Rhaast00/vervappweb/internal/service/redesigner"
	"github.com/Rhaast00/vervappweb/internal/service/snapshot"
	"github.com/Rhaast00/vervappweb/internal/util"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the HTTP surface.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Handlers *api.Handlers

	analyzerSvc *analyzer.Service
	closers     []func()
}

// Build assembles all infrastructure services. Heavy-weight initialization
// (DB, cache, schema) happens here so main stays focused on lifecycle.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	if err := postgresSvc.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	credStore, err := credentials.NewPostgresStore(postgresSvc.GetDB(), cfg.Credentials.MasterKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential store: %w", err)
	}

	registry := ai.NewRegistry(credStore, logger)
	breaker := util.NewCircuitBreaker(cfg.AI.BreakerThreshold, cfg.AI.BreakerResetTimeout, logger)
	records := database.NewRecordRepository(postgresSvc.GetDB(), logger)

	var fetcher analyzer.SnapshotFetcher
	if cfg.Snapshot.Enabled {
		fetcher = snapshot.NewFetcher(cfg.Snapshot.Timeout, cfg.Snapshot.MaxSampleChars, logger)
	}

	analyzerSvc := analyzer.NewService(analyzer.Dependencies{
		Credentials: credStore,
		Resolver:    registry,
		Sink:        records,
		Cache:       cacheSvc,
		Fetcher:     fetcher,
		Breaker:     breaker,
		CacheTTL:    cfg.AI.AnalysisCacheTTL,
		Logger:      logger,
	})
	closers = append(closers, analyzerSvc.Close)

	redesignerSvc := redesigner.NewService(redesigner.Dependencies{
		Resolver: registry,
		Sink:     records,
		Breaker:  breaker,
		Logger:   logger,
	})

	handlers := api.NewHandlers(
		analyzerSvc,
		redesignerSvc,
		credStore,
		registry,
		records,
		cfg.Credentials.DefaultUserID,
		cfg.AI.DefaultProvider,
		logger,
	)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Handlers:    handlers,
		analyzerSvc: analyzerSvc,
		closers:     closers,
	}, nil
}

// Close releases services in reverse build order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
