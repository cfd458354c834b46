// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Command server runs the bookstore recommendation service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnouvdev/libreria/internal/api"
	"github.com/gnouvdev/libreria/internal/catalog"
	"github.com/gnouvdev/libreria/internal/config"
	"github.com/gnouvdev/libreria/internal/logging"
	"github.com/gnouvdev/libreria/internal/metrics"
	"github.com/gnouvdev/libreria/internal/recommend"
	"github.com/gnouvdev/libreria/internal/supervisor"
	"github.com/gnouvdev/libreria/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("seed_path", cfg.Catalog.SeedPath).
		Dur("model_ttl", cfg.Recommend.TTL).
		Msg("starting libreria")

	provider, cleanup, err := buildProvider(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to set up catalog provider")
	}
	defer cleanup()

	engine, err := recommend.NewEngine(cfg.EngineConfig(), provider, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to create recommendation engine")
	}

	router := api.NewRouter(engine, api.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	// The refresher checks at half the TTL so the model never goes stale on
	// a quiet instance.
	tree.AddModelService(services.NewRefreshService(
		engine,
		cfg.Recommend.TTL/2,
		logging.Logger(),
		func() {
			st := engine.Status()
			metrics.UpdateModelGauges(st.Books, st.IndexedDocuments, st.VocabularySize)
		},
	))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("http server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("shutdown signal received")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor error")
		}
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service failed to stop in time")
		}
	}

	logging.Info().Msg("stopped")
}

// buildProvider assembles the catalog provider chain:
//
//	file -> circuit breaker -> snapshot fallback
//
// The snapshot layer is skipped when no snapshot path is configured.
func buildProvider(cfg *config.Config) (catalog.Provider, func(), error) {
	var provider catalog.Provider = catalog.NewFileProvider(cfg.Catalog.SeedPath)

	provider = catalog.NewBreakerProvider(provider, catalog.BreakerConfig{
		FailureThreshold: cfg.Catalog.BreakerFailureThreshold,
		Timeout:          cfg.Catalog.BreakerTimeout,
		MaxRequests:      1,
	}, logging.Logger())

	if cfg.Catalog.SnapshotPath == "" {
		return provider, func() {}, nil
	}

	store, err := catalog.OpenSnapshotStore(cfg.Catalog.SnapshotPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing snapshot store")
		}
	}
	return catalog.NewSnapshotProvider(provider, store, logging.Logger()), cleanup, nil
}
