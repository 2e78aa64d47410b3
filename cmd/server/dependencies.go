package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/raid-gold-api/internal/clients/lostark"
	"github.com/KirkDiggler/raid-gold-api/internal/config"
	"github.com/KirkDiggler/raid-gold-api/internal/orchestrators/expedition"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-gold-api/internal/redis"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/raids"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/selections"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace"
)

// dependencies is everything the server wires from config
type dependencies struct {
	Expedition expedition.Service

	closers []func() error
}

// Close releases store connections in reverse order of creation
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Warn("Failed to close dependency", "error", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}
	clk := clock.New()
	ids := idgen.NewUUID("rev")

	var redisClient redis.Client
	if cfg.NeedsRedis() {
		client, err := redis.NewFromURL(cfg.RedisURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		redisClient = client
	}

	selectionRepo, err := buildSelectionRepository(cfg, deps, redisClient, clk, ids)
	if err != nil {
		deps.Close()
		return nil, err
	}

	workspaceRepo, err := buildWorkspaceRepository(cfg, redisClient, clk)
	if err != nil {
		deps.Close()
		return nil, err
	}

	raidRepo, err := raids.NewFileRepository(&raids.FileConfig{Path: cfg.RaidCatalogPath})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to load raid catalog: %w", err)
	}

	rosterClient, err := buildRosterClient(cfg, redisClient)
	if err != nil {
		deps.Close()
		return nil, err
	}

	orch, err := expedition.NewOrchestrator(&expedition.Config{
		RosterClient:  rosterClient,
		RaidRepo:      raidRepo,
		SelectionRepo: selectionRepo,
		WorkspaceRepo: workspaceRepo,
	})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create expedition orchestrator: %w", err)
	}
	deps.Expedition = orch

	return deps, nil
}

func buildSelectionRepository(
	cfg *config.Config, deps *dependencies,
	redisClient redis.Client, clk clock.Clock, ids idgen.Generator,
) (selections.Repository, error) {
	switch cfg.SelectionStore {
	case config.StoreRedis:
		repo, err := selections.NewRedisRepository(&selections.RedisConfig{
			Client:      redisClient,
			Clock:       clk,
			IDGenerator: ids,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis selection store: %w", err)
		}
		return repo, nil
	case config.StoreSQLite:
		repo, err := selections.OpenSQLite(&selections.SQLiteConfig{
			Path:        cfg.SQLitePath,
			Clock:       clk,
			IDGenerator: ids,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite selection store: %w", err)
		}
		deps.closers = append(deps.closers, repo.Close)
		return repo, nil
	case config.StoreMemory:
		slog.Warn("Saved selections are kept in memory and lost on restart")
		return selections.NewInMemory(clk, ids), nil
	default:
		return nil, fmt.Errorf("unknown selection store %q", cfg.SelectionStore)
	}
}

func buildWorkspaceRepository(cfg *config.Config, redisClient redis.Client, clk clock.Clock) (workspace.Repository, error) {
	switch cfg.WorkspaceStore {
	case config.StoreRedis:
		repo, err := workspace.NewRedisRepository(&workspace.RedisConfig{
			Client: redisClient,
			Clock:  clk,
			TTL:    cfg.WorkspaceTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis workspace store: %w", err)
		}
		return repo, nil
	case config.StoreMemory:
		return workspace.NewInMemory(clk, cfg.WorkspaceTTL), nil
	default:
		return nil, fmt.Errorf("unknown workspace store %q", cfg.WorkspaceStore)
	}
}

// buildRosterClient caches rosters in Redis whenever a Redis client exists
func buildRosterClient(cfg *config.Config, redisClient redis.Client) (lostark.Client, error) {
	client, err := lostark.New(&lostark.Config{
		APIKey:      cfg.LostArkAPIKey,
		BaseURL:     cfg.LostArkBaseURL,
		HTTPTimeout: cfg.LostArkTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roster client: %w", err)
	}

	if redisClient == nil || cfg.RosterCacheTTL == 0 {
		return client, nil
	}

	cached, err := lostark.NewCachedClient(&lostark.CachedConfig{
		Client:       client,
		RedisClient:  redisClient,
		TTL:          cfg.RosterCacheTTL,
		FetchTimeout: cfg.LostArkTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roster cache: %w", err)
	}
	return cached, nil
}
