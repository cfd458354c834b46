// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Package config loads the service configuration from layered sources:
// built-in defaults, an optional YAML file, and environment variables
// (highest priority, prefixed LIBRERIA_).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gnouvdev/libreria/internal/recommend"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Host is the bind address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `koanf:"read_timeout" validate:"min=1s"`

	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"min=1s"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`

	// RateLimit is the per-client request budget per minute.
	RateLimit int `koanf:"rate_limit" validate:"min=1"`

	// CORSOrigins lists allowed CORS origins. "*" allows all.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig configures the log stream.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file:line in events.
	Caller bool `koanf:"caller"`
}

// CatalogConfig configures catalog access.
type CatalogConfig struct {
	// SeedPath is the JSON catalog file.
	SeedPath string `koanf:"seed_path" validate:"required"`

	// SnapshotPath is the Badger directory for the last-good-catalog
	// snapshot. Empty disables snapshotting.
	SnapshotPath string `koanf:"snapshot_path"`

	// BreakerFailureThreshold trips the fetch breaker after this many
	// consecutive failures.
	BreakerFailureThreshold uint32 `koanf:"breaker_failure_threshold" validate:"min=1"`

	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration `koanf:"breaker_timeout" validate:"min=1s"`
}

// RecommendConfig configures the recommendation model.
type RecommendConfig struct {
	// TTL is the model staleness interval.
	TTL time.Duration `koanf:"ttl" validate:"min=1m"`

	// DefaultLimit is the result count when the request omits one.
	DefaultLimit int `koanf:"default_limit" validate:"min=1"`

	// MaxLimit caps requested result counts.
	MaxLimit int `koanf:"max_limit" validate:"min=1,gtefield=DefaultLimit"`
}

// defaultConfig returns the built-in defaults, overridden by file and env
// layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RateLimit:       120,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			SeedPath:                "/data/catalog.json",
			SnapshotPath:            "/data/snapshot",
			BreakerFailureThreshold: 3,
			BreakerTimeout:          30 * time.Second,
		},
		Recommend: RecommendConfig{
			TTL:          6 * time.Hour,
			DefaultLimit: 12,
			MaxLimit:     50,
		},
	}
}

// EngineConfig converts the recommend section into the engine's config.
func (c *Config) EngineConfig() *recommend.Config {
	engineCfg := recommend.DefaultConfig()
	engineCfg.TTL = c.Recommend.TTL
	engineCfg.DefaultLimit = c.Recommend.DefaultLimit
	engineCfg.MaxLimit = c.Recommend.MaxLimit
	return engineCfg
}

var validate = validator.New()

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
