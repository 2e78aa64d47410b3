package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/raid-gold-api/internal/config"
	"github.com/KirkDiggler/raid-gold-api/internal/legacy"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-gold-api/internal/redis"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/selections"
)

var (
	dataFile  string
	overwrite bool
	dryRun    bool
)

var rootCmd = &cobra.Command{
	Use:   "import-user-data",
	Short: "Import user_data.json from the file-backed planner into the selection store",
	Long: `Reads the legacy user_data.json and saves every player into the store named by
SELECTION_STORE (redis or sqlite). Players that already have saved selections are
skipped unless --overwrite is given.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&dataFile, "file", "user_data.json", "path to the legacy user data file")
	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace selections that already exist")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "convert and report without writing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(dataFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dataFile, err)
	}

	players, err := legacy.Parse(data)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d players from %s\n", len(players), dataFile)

	repo, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	listed, err := repo.List(ctx, selections.ListInput{})
	if err != nil {
		return fmt.Errorf("failed to list existing selections: %w", err)
	}
	existing := make(map[string]bool, len(listed.Identities))
	for _, identity := range listed.Identities {
		existing[identity] = true
	}

	var imported, skipped int
	for _, player := range players {
		for _, warning := range player.Warnings {
			fmt.Printf("! %s: %s\n", player.Identity, warning)
		}

		if existing[player.Identity] && !overwrite {
			fmt.Printf("- %s already has saved selections, skipping\n", player.Identity)
			skipped++
			continue
		}

		if dryRun {
			fmt.Printf("~ %s would be imported (%d characters)\n", player.Identity, len(player.State.ChosenRaids))
			imported++
			continue
		}

		out, err := repo.Save(ctx, selections.SaveInput{Identity: player.Identity, State: player.State})
		if err != nil {
			fmt.Printf("x %s failed: %v\n", player.Identity, err)
			continue
		}
		fmt.Printf("+ %s imported as %s\n", player.Identity, out.Record.Revision)
		imported++
	}

	fmt.Printf("\nImported %d, skipped %d of %d players\n", imported, skipped, len(players))
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (selections.Repository, func(), error) {
	switch cfg.SelectionStore {
	case config.StoreRedis:
		client, err := redis.NewFromURL(cfg.RedisURL, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		fmt.Println("Connected to Redis:", cfg.RedisURL)

		repo, err := selections.NewRedisRepository(&selections.RedisConfig{
			Client:      client,
			Clock:       clock.New(),
			IDGenerator: idgen.NewUUID("rev"),
		})
		if err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil // nolint:errcheck // safe to ignore in cleanup
	case config.StoreSQLite:
		repo, err := selections.OpenSQLite(&selections.SQLiteConfig{
			Path:        cfg.SQLitePath,
			Clock:       clock.New(),
			IDGenerator: idgen.NewUUID("rev"),
		})
		if err != nil {
			return nil, nil, err
		}
		fmt.Println("Opened SQLite store:", cfg.SQLitePath)
		return repo, func() { _ = repo.Close() }, nil // nolint:errcheck // safe to ignore in cleanup
	default:
		return nil, nil, fmt.Errorf("cannot import into %q store, use redis or sqlite", cfg.SelectionStore)
	}
}
