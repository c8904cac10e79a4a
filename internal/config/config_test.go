// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error without a JWT secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("error = %v, want a jwt_secret mention", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ORDINAL_SECURITY_JWT_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Recommend.WindowSize != 100 {
		t.Errorf("WindowSize = %d, want 100", cfg.Recommend.WindowSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ORDINAL_SECURITY_JWT_SECRET", testSecret)
	t.Setenv("ORDINAL_SERVER_PORT", "9090")
	t.Setenv("ORDINAL_STORE_IN_MEMORY", "true")
	t.Setenv("ORDINAL_SECURITY_CORS_ORIGINS", "http://a.example.com, http://b.example.com")
	t.Setenv("ORDINAL_RECOMMEND_RESULT_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Store.InMemory {
		t.Error("InMemory = false, want true")
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "http://b.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.ResultLimit != 5 {
		t.Errorf("ResultLimit = %d, want 5", cfg.Recommend.ResultLimit)
	}
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 7000
security:
  jwt_secret: "` + testSecret + `"
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("ORDINAL_SERVER_PORT", "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Port = %d, want the env override 7100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want file values", cfg.Logging)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Security.JWTSecret = testSecret
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "port"},
		{"short secret", func(c *Config) { c.Security.JWTSecret = "short" }, "jwt_secret"},
		{"zero session timeout", func(c *Config) { c.Security.SessionTimeout = 0 }, "session_timeout"},
		{"no store path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad window size", func(c *Config) { c.Recommend.WindowSize = -1 }, "recommend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAllowsInMemoryWithoutPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = testSecret
	cfg.Store.Path = ""
	cfg.Store.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Recommend.WindowSize = 50
	cfg.Recommend.ResultLimit = 7

	engine := cfg.EngineConfig()
	if engine.WindowSize != 50 || engine.ResultLimit != 7 {
		t.Errorf("engine config = %+v", engine)
	}
	if engine.Weights.Merchant == 0 {
		t.Error("default weights must be preserved")
	}

	sessionTimeout := 24 * time.Hour
	if cfg.Security.SessionTimeout != sessionTimeout {
		t.Errorf("SessionTimeout = %v, want %v", cfg.Security.SessionTimeout, sessionTimeout)
	}
}
