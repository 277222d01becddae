// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

// Promodex server binary.
//
// The server loads the product catalog and the behavioral event log from CSV
// at startup, then serves discount recommendations over HTTP until it
// receives SIGINT or SIGTERM.
//
// Configuration comes from defaults, an optional config.yaml, and environment
// variables, in increasing priority:
//
//	CATALOG_PATH=data/product_catalog.csv \
//	EVENTS_PATH=data/main_customer_data.csv \
//	HTTP_PORT=5001 \
//	promodex-server
//
// # Port 5001
//
// The default port 5001 matches the service Promodex replaced, so storefront
// configurations keep working unchanged.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/promodex/promodex/internal/api"
	"github.com/promodex/promodex/internal/config"
	"github.com/promodex/promodex/internal/engine"
	"github.com/promodex/promodex/internal/logging"
	"github.com/promodex/promodex/internal/metrics"
	"github.com/promodex/promodex/internal/store"
	"github.com/promodex/promodex/internal/supervisor"
	"github.com/promodex/promodex/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not available yet
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog_path", cfg.Data.CatalogPath).
		Str("events_path", cfg.Data.EventsPath).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Promodex")

	// Both datasets are mandatory; the engine is useless without them.
	catalog, err := store.LoadCatalog(cfg.Data.CatalogPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Data.CatalogPath).Msg("Failed to load product catalog")
	}
	events, err := store.LoadEvents(cfg.Data.EventsPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Data.EventsPath).Msg("Failed to load behavioral events")
	}

	metrics.SetStoreSizes(catalog.Len(), events.Len())
	logging.Info().
		Int("catalog_products", catalog.Len()).
		Int("behavioral_events", events.Len()).
		Msg("Datasets loaded")

	eng := engine.New(catalog, events)
	handler := api.NewHandler(eng, catalog, events, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor finishes.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Promodex stopped gracefully")
}
