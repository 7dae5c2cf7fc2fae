package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KirkDiggler/armybook-api/internal/clients/calculator"
	"github.com/KirkDiggler/armybook-api/internal/clients/renderer"
	"github.com/KirkDiggler/armybook-api/internal/config"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
	"github.com/KirkDiggler/armybook-api/internal/pkg/clock"
	"github.com/KirkDiggler/armybook-api/internal/pkg/idgen"
	"github.com/KirkDiggler/armybook-api/internal/postgres"
	"github.com/KirkDiggler/armybook-api/internal/redis"
	armybookrepo "github.com/KirkDiggler/armybook-api/internal/repositories/armybook"
	artifactrepo "github.com/KirkDiggler/armybook-api/internal/repositories/artifact"
	"github.com/KirkDiggler/armybook-api/internal/services/artifact"
	"github.com/KirkDiggler/armybook-api/internal/services/costing"
	"github.com/KirkDiggler/armybook-api/internal/services/skirmish"
)

const equipmentIDLength = 12

// app holds the wired services and the resources to release on exit
type app struct {
	armyBooks      armybook.Service
	metricsHandler http.Handler
	closers        []func() error
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to release resource", "error", err)
		}
	}
}

type storage struct {
	books     armybookrepo.Repository
	artifacts artifactrepo.Repository
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Enabled {
		reg := prom.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)
		a.metricsHandler = metrics.HTTPHandler(reg)
	}

	store, err := a.openStorage(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	calc, err := calculator.New(&calculator.Config{
		BaseURL:     cfg.Calculator.BaseURL,
		HTTPTimeout: cfg.Calculator.Timeout,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create calculator client: %w", err)
	}

	render, err := renderer.New(&renderer.Config{
		Endpoint:         cfg.Renderer.Endpoint,
		APIKey:           cfg.Renderer.APIKey,
		PrintURLTemplate: cfg.Renderer.PrintURLTemplate,
		ServiceName:      cfg.Renderer.ServiceName,
		HTTPTimeout:      cfg.Renderer.HTTPTimeout,
		Retry:            cfg.Renderer.Retry.Policy(),
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create renderer client: %w", err)
	}

	costingService, err := costing.NewService(&costing.Config{
		Calculator: calc,
		Metrics:    recorder,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create costing service: %w", err)
	}

	skirmishService, err := skirmish.NewService(&skirmish.Config{
		Calculator: calc,
		Costing:    costingService,
		Metrics:    recorder,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create skirmish service: %w", err)
	}

	artifactService, err := artifact.NewService(&artifact.Config{
		Repository:    store.artifacts,
		Renderer:      render,
		RenderTimeout: cfg.Renderer.Timeout,
		Metrics:       recorder,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create artifact service: %w", err)
	}

	a.armyBooks, err = armybook.NewOrchestrator(&armybook.Config{
		Repository:           store.books,
		Costing:              costingService,
		Skirmish:             skirmishService,
		Artifacts:            artifactService,
		BookIDGenerator:      idgen.NewUUID(""),
		EquipmentIDGenerator: idgen.NewShort(equipmentIDLength),
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create army book orchestrator: %w", err)
	}

	return a, nil
}

func (a *app) openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return a.openPostgres(ctx, cfg.Storage.Postgres)
	default:
		return a.openRedis(ctx, cfg.Storage.Redis, cfg.Cache)
	}
}

func (a *app) openRedis(ctx context.Context, cfg config.RedisConfig, cache config.CacheConfig) (*storage, error) {
	client, err := redis.NewClient(&redis.Options{
		Mode:       redis.Mode(cfg.Mode),
		Addrs:      cfg.Addrs(),
		MasterName: cfg.MasterName,
		Password:   cfg.Password,
		DB:         cfg.DB,
		PoolSize:   cfg.PoolSize,
		UseTLS:     cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %v: %w", cfg.Addrs(), err)
	}
	slog.Info("connected to redis", "mode", cfg.Mode, "addrs", cfg.Addrs())

	books, err := armybookrepo.NewRedisRepository(&armybookrepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create army book repository: %w", err)
	}

	artifacts, err := artifactrepo.NewRedisRepository(&artifactrepo.RedisConfig{
		Client: client,
		TTL:    cache.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact repository: %w", err)
	}

	return &storage{books: books, artifacts: artifacts}, nil
}

func (a *app) openPostgres(ctx context.Context, cfg config.PostgresConfig) (*storage, error) {
	db, err := postgres.Open(ctx, cfg.URL, &postgres.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	if cfg.CreateSchema {
		if err := postgres.CreateSchema(ctx, db); err != nil {
			return nil, err
		}
	}
	slog.Info("connected to postgres")

	return newPostgresStorage(db)
}

func newPostgresStorage(db *sql.DB) (*storage, error) {
	books, err := armybookrepo.NewPostgresRepository(&armybookrepo.PostgresConfig{
		DB:    db,
		Clock: clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create army book repository: %w", err)
	}

	artifacts, err := artifactrepo.NewPostgresRepository(&artifactrepo.PostgresConfig{DB: db})
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact repository: %w", err)
	}

	return &storage{books: books, artifacts: artifacts}, nil
}
