package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/KirkDiggler/raid-gold-api/internal/config"
	"github.com/KirkDiggler/raid-gold-api/internal/orchestrators/expedition"
)

const testCatalog = `raids:
  - id: 1
    name: Valtan
    normalGold: 1200
    hardGold: 1800
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "raids.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o600))

	return &config.Config{
		GRPCPort:        50051,
		LogLevel:        "info",
		LostArkAPIKey:   "key",
		LostArkBaseURL:  "http://localhost:1",
		LostArkTimeout:  time.Second,
		RosterCacheTTL:  time.Minute,
		SelectionStore:  config.StoreMemory,
		WorkspaceStore:  config.StoreMemory,
		WorkspaceTTL:    time.Hour,
		SQLitePath:      filepath.Join(dir, "selections.db"),
		RaidCatalogPath: catalogPath,
	}
}

func TestBuildDependencies(t *testing.T) {
	ctx := context.Background()

	t.Run("memory stores", func(t *testing.T) {
		deps, err := buildDependencies(ctx, testConfig(t))
		require.NoError(t, err)
		defer deps.Close()

		out, err := deps.Expedition.ListRaids(ctx, &expedition.ListRaidsInput{})
		require.NoError(t, err)
		require.Len(t, out.Raids, 1)
		assert.Equal(t, "Valtan", out.Raids[0].Name)
	})

	t.Run("sqlite store", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.SelectionStore = config.StoreSQLite

		deps, err := buildDependencies(ctx, cfg)
		require.NoError(t, err)
		defer deps.Close()

		_, err = deps.Expedition.ToggleRaid(ctx, &expedition.ToggleRaidInput{Identity: "Bob", Character: "Bob", RaidID: 1})
		require.NoError(t, err)
		saved, err := deps.Expedition.SaveSelections(ctx, &expedition.SaveSelectionsInput{Identity: "Bob"})
		require.NoError(t, err)
		assert.Equal(t, int64(1200), saved.Selections.Totals.Grand)
		assert.FileExists(t, cfg.SQLitePath)
	})

	t.Run("redis stores", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(t)
		cfg.SelectionStore = config.StoreRedis
		cfg.WorkspaceStore = config.StoreRedis
		cfg.RedisURL = "redis://" + mr.Addr() + "/0"

		deps, err := buildDependencies(ctx, cfg)
		require.NoError(t, err)
		defer deps.Close()

		_, err = deps.Expedition.ToggleRaid(ctx, &expedition.ToggleRaidInput{Identity: "Bob", Character: "Bob", RaidID: 1})
		require.NoError(t, err)
		assert.True(t, mr.Exists("workspace:Bob"))
	})

	t.Run("unreachable redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(t)
		cfg.SelectionStore = config.StoreRedis
		cfg.RedisURL = "redis://" + mr.Addr() + "/0"
		mr.Close()

		_, err := buildDependencies(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reach redis")
	})

	t.Run("missing catalog", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RaidCatalogPath = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := buildDependencies(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load raid catalog")
	})
}

func TestSlogLoggerKeepsLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	bridge := slogLogger(logger)
	bridge.Log(context.Background(), grpc_logging.LevelDebug, "hidden")
	bridge.Log(context.Background(), grpc_logging.LevelWarn, "finished call", "grpc.code", "Unavailable")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "grpc.code=Unavailable")
}
