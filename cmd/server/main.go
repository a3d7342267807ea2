// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Command server runs the Meal Explorer collection core: the durable
// stores, badge engine, notification bus, recipe catalog client, and the
// HTTP surface the UI talks to.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anand880441-source/meal-explorer/internal/api"
	"github.com/anand880441-source/meal-explorer/internal/badges"
	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/catalog"
	"github.com/anand880441-source/meal-explorer/internal/config"
	"github.com/anand880441-source/meal-explorer/internal/grocery"
	"github.com/anand880441-source/meal-explorer/internal/logging"
	"github.com/anand880441-source/meal-explorer/internal/storage"
	"github.com/anand880441-source/meal-explorer/internal/stores"
	"github.com/anand880441-source/meal-explorer/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	durable, err := storage.Open(storage.Config{
		Path:       cfg.Storage.Path,
		SyncWrites: cfg.Storage.SyncWrites,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := durable.Close(); err != nil {
			logging.Warn().Err(err).Msg("durable store close failed")
		}
	}()

	session := storage.NewSessionStore()

	b := bus.New()
	defer func() {
		if err := b.Close(); err != nil {
			logging.Warn().Err(err).Msg("bus close failed")
		}
	}()

	liked := stores.NewLikedStore(durable, b)
	ratings := stores.NewRatingStore(durable, b)
	notes := stores.NewNoteStore(durable, b)
	streak := stores.NewStreakStore(durable, b)
	trending := stores.NewTrendingStore(session)
	planner := stores.NewPlannerStore(durable, b)

	client := catalog.New(catalog.Config{
		BaseURL:           cfg.Catalog.BaseURL,
		Timeout:           cfg.Catalog.Timeout,
		RequestsPerSecond: cfg.Catalog.RPS,
		Burst:             cfg.Catalog.Burst,
	})

	engine := badges.NewEngine(durable, b, liked, ratings, notes, streak)
	engine.SetAreaResolver(client)

	handler := &api.Handler{
		Liked:    liked,
		Ratings:  ratings,
		Notes:    notes,
		Streak:   streak,
		Trending: trending,
		Planner:  planner,
		Engine:   engine,
		Catalog:  client,
		Grocery:  grocery.NewBuilder(liked, client, session),
		Bus:      b,
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(handler, cfg.Server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sup := supervisor.New()
	sup.Add(supervisor.NewHTTPService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("addr", server.Addr).
		Str("catalog", cfg.Catalog.BaseURL).
		Msg("meal explorer starting")

	if err := sup.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logging.Info().Msg("meal explorer stopped")
	return nil
}
