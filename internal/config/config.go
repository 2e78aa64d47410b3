// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/raid-gold-api/internal/errors"
)

// Selection store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds everything the server needs to wire its dependencies
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Lost Ark developer API
	LostArkAPIKey  string        `env:"LOSTARK_API_KEY"`
	LostArkBaseURL string        `env:"LOSTARK_BASE_URL" envDefault:"https://developer-lostark.game.onstove.com"`
	LostArkTimeout time.Duration `env:"LOSTARK_TIMEOUT" envDefault:"10s"`
	RosterCacheTTL time.Duration `env:"ROSTER_CACHE_TTL" envDefault:"10m"`

	// SelectionStore is where saved selections live: redis, sqlite or memory
	SelectionStore string `env:"SELECTION_STORE" envDefault:"redis"`
	// WorkspaceStore holds unsaved working state: memory or redis
	WorkspaceStore string        `env:"WORKSPACE_STORE" envDefault:"memory"`
	WorkspaceTTL   time.Duration `env:"WORKSPACE_TTL" envDefault:"2h"`

	RedisURL   string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/selections.db"`

	RaidCatalogPath string `env:"RAID_CATALOG_PATH" envDefault:"configs/raids.yaml"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}

	return cfg, nil
}

// Validate checks the settings that do not depend on flags
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}

	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("SELECTION_STORE", c.SelectionStore, []string{StoreRedis, StoreSQLite, StoreMemory}, vb)
	errors.ValidateEnum("WORKSPACE_STORE", c.WorkspaceStore, []string{StoreMemory, StoreRedis}, vb)
	errors.ValidateRequired("LOSTARK_API_KEY", c.LostArkAPIKey, vb)
	errors.ValidateRequired("RAID_CATALOG_PATH", c.RaidCatalogPath, vb)

	if c.NeedsRedis() {
		errors.ValidateRequired("REDIS_URL", c.RedisURL, vb)
	}
	if c.SelectionStore == StoreSQLite {
		errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	}
	if c.WorkspaceTTL <= 0 {
		vb.Field("WORKSPACE_TTL", "must be positive")
	}
	if c.RosterCacheTTL < 0 {
		vb.Field("ROSTER_CACHE_TTL", "cannot be negative")
	}

	return vb.Build()
}

// NeedsRedis reports whether any configured component talks to Redis.
// The roster cache uses Redis whenever it is available.
func (c *Config) NeedsRedis() bool {
	return c.SelectionStore == StoreRedis || c.WorkspaceStore == StoreRedis
}

// SlogLevel converts LogLevel for slog.HandlerOptions
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
