// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package main is the entry point for the Ordinal server.
//
// Ordinal is a credit-card rewards recommendation backend. Its core is a
// deterministic, explainable ranking engine that orders a reward catalog per
// card from the card's recent spending profile, with a points-cost fallback
// for users who opt out of personalization.
//
// The server initializes components in the following order:
//
//  1. Configuration: koanf v2 layered loading (defaults, config.yaml,
//     ORDINAL_ environment variables)
//  2. Logging: global zerolog logger
//  3. Store: embedded badger database, with optional demo-catalog seeding
//  4. Ranking engine
//  5. HTTP server: chi REST API, supervised by a suture tree
//
// Shutdown is graceful on SIGINT and SIGTERM: the server stops accepting
// connections and drains in-flight requests within the configured timeout.
package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ordinal-app/ordinal/internal/api"
	"github.com/ordinal-app/ordinal/internal/auth"
	"github.com/ordinal-app/ordinal/internal/config"
	"github.com/ordinal-app/ordinal/internal/logging"
	"github.com/ordinal-app/ordinal/internal/recommend"
	"github.com/ordinal-app/ordinal/internal/store"
	"github.com/ordinal-app/ordinal/internal/supervisor"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting Ordinal")

	var st *store.Store
	if cfg.Store.InMemory {
		st, err = store.OpenInMemory(logging.Logger())
	} else {
		st, err = store.Open(cfg.Store.Path, logging.Logger())
	}
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	if cfg.Store.SeedDemoData {
		seeded, err := st.SeedRewards(context.Background())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo rewards")
		}
		if seeded > 0 {
			logging.Info().Int("rewards", seeded).Msg("Seeded demo reward catalog")
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		txns, err := st.SeedDemoTransactions(context.Background(), rng)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo transactions")
		}
		if txns > 0 {
			logging.Info().Int("transactions", txns).Msg("Seeded demo transactions")
		}
	}

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create ranking engine")
	}

	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.SessionTimeout)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create JWT manager")
	}

	handler := api.NewHandler(st, engine, jwtManager, logging.Logger(), version)
	router := api.NewRouter(handler, jwtManager, api.RouterConfig{
		CORSAllowedOrigins:    cfg.Security.CORSOrigins,
		RateLimitRequests:     cfg.Security.RateLimitReqs,
		RateLimitWindow:       cfg.Security.RateLimitWindow,
		AuthRateLimitRequests: cfg.Security.AuthRateLimitReqs,
		AuthRateLimitWindow:   cfg.Security.AuthRateLimitWindow,
		RateLimitDisabled:     cfg.Security.RateLimitDisabled,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// zerolog bridged to slog for sutureslog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(supervisor.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}

	logging.Info().Msg("Ordinal stopped gracefully")
}
