// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package config loads Ordinal's layered configuration: struct defaults,
// then an optional YAML file, then ORDINAL_-prefixed environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ordinal-app/ordinal/internal/recommend"
)

// Config is the complete runtime configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig holds badger settings.
type StoreConfig struct {
	// Path is the badger directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory runs the store without persistence. Meant for development.
	InMemory bool `koanf:"in_memory"`

	// SeedDemoData loads the demo reward catalog on startup when the
	// catalog is empty.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// SecurityConfig holds auth and HTTP-surface protection settings.
type SecurityConfig struct {
	// JWTSecret signs bearer tokens. Required, at least 32 bytes.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTimeout bounds token lifetime.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs       int           `koanf:"rate_limit_reqs"`
	RateLimitWindow     time.Duration `koanf:"rate_limit_window"`
	AuthRateLimitReqs   int           `koanf:"auth_rate_limit_reqs"`
	AuthRateLimitWindow time.Duration `koanf:"auth_rate_limit_window"`
	RateLimitDisabled   bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig exposes the ranking engine's tunable knobs. Zero values
// fall back to the engine defaults; the scoring weights themselves are not
// configuration.
type RecommendConfig struct {
	WindowSize               int     `koanf:"window_size"`
	SparseThreshold          int     `koanf:"sparse_threshold"`
	ResultLimit              int     `koanf:"result_limit"`
	MinCategoryShare         float64 `koanf:"min_category_share"`
	AggregatorMinDiningShare float64 `koanf:"aggregator_min_dining_share"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment layers.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Path:         "/data/ordinal",
			InMemory:     false,
			SeedDemoData: false,
		},
		Security: SecurityConfig{
			JWTSecret:           "",
			SessionTimeout:      24 * time.Hour,
			CORSOrigins:         []string{"http://localhost:3000"},
			RateLimitReqs:       300,
			RateLimitWindow:     time.Minute,
			AuthRateLimitReqs:   10,
			AuthRateLimitWindow: 5 * time.Minute,
			RateLimitDisabled:   false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			WindowSize:               engine.WindowSize,
			SparseThreshold:          engine.SparseThreshold,
			ResultLimit:              engine.ResultLimit,
			MinCategoryShare:         engine.MinCategoryShare,
			AggregatorMinDiningShare: engine.AggregatorMinDiningShare,
		},
	}
}

// EngineConfig converts the recommend section into a recommend.Config,
// keeping the default scoring weights.
func (c *Config) EngineConfig() *recommend.Config {
	engine := recommend.DefaultConfig()
	engine.WindowSize = c.Recommend.WindowSize
	engine.SparseThreshold = c.Recommend.SparseThreshold
	engine.ResultLimit = c.Recommend.ResultLimit
	engine.MinCategoryShare = c.Recommend.MinCategoryShare
	engine.AggregatorMinDiningShare = c.Recommend.AggregatorMinDiningShare
	return engine
}

// Validate rejects configurations that cannot run.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters")
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("security.session_timeout must be positive")
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required unless store.in_memory is set")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
