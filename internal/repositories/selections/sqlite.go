package selections

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	Path        string
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures the database path is set
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

// SQLiteRepository stores selections in normalized tables, one row per selected raid
// and per extra income entry
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
	ids   idgen.Generator
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens and migrates the selection database
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := filepath.Clean(cfg.Path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}

	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "run migrations")
	}

	clk, ids := defaults(cfg.Clock, cfg.IDGenerator)

	return &SQLiteRepository{db: db, clock: clk, ids: ids}, nil
}

// Close releases the underlying connection
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get loads the saved record for an identity
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	record := &entities.SelectionRecord{
		Identity: input.Identity,
		State:    entities.NewSelectionState(),
	}

	var updatedAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT revision, updated_at FROM player_selections WHERE identity = ?`,
		input.Identity,
	).Scan(&record.Revision, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("no saved selections for %s", input.Identity)
		}
		return nil, errors.Wrap(err, "get player selections")
	}
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	if err := r.loadRaids(ctx, input.Identity, record.State); err != nil {
		return nil, err
	}
	if err := r.loadIncomes(ctx, input.Identity, record.State); err != nil {
		return nil, err
	}

	return &GetOutput{Record: record}, nil
}

func (r *SQLiteRepository) loadRaids(ctx context.Context, identity string, state *entities.SelectionState) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT character_name, raid_id, tier FROM selected_raids
		 WHERE identity = ?
		 ORDER BY character_name, position`,
		identity,
	)
	if err != nil {
		return errors.Wrap(err, "query selected raids")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			character string
			raidID    int32
			tier      sql.NullString
		)
		if err := rows.Scan(&character, &raidID, &tier); err != nil {
			return errors.Wrap(err, "scan selected raid")
		}
		state.ChosenRaids[character] = append(state.ChosenRaids[character], raidID)
		if tier.Valid {
			state.Difficulties[entities.SelectionKey{Character: character, RaidID: raidID}] = entities.Tier(tier.String)
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "iterate selected raids")
	}
	return nil
}

func (r *SQLiteRepository) loadIncomes(ctx context.Context, identity string, state *entities.SelectionState) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT character_name, amount FROM extra_incomes WHERE identity = ?`,
		identity,
	)
	if err != nil {
		return errors.Wrap(err, "query extra incomes")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var character, amount string
		if err := rows.Scan(&character, &amount); err != nil {
			return errors.Wrap(err, "scan extra income")
		}
		state.ExtraIncome[character] = amount
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "iterate extra incomes")
	}
	return nil
}

// Save replaces every row for the identity inside one transaction
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	record := newRecord(input, r.clock, r.ids)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO player_selections (identity, revision, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(identity) DO UPDATE SET
		    revision = excluded.revision,
		    updated_at = excluded.updated_at`,
		record.Identity, record.Revision, record.UpdatedAt.UnixMilli(),
	); err != nil {
		return nil, errors.Wrap(err, "upsert player selections")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM selected_raids WHERE identity = ?`, record.Identity); err != nil {
		return nil, errors.Wrap(err, "clear selected raids")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM extra_incomes WHERE identity = ?`, record.Identity); err != nil {
		return nil, errors.Wrap(err, "clear extra incomes")
	}

	for character, raids := range record.State.ChosenRaids {
		for position, raidID := range raids {
			var tier sql.NullString
			if t, ok := record.State.Difficulties[entities.SelectionKey{Character: character, RaidID: raidID}]; ok {
				tier = sql.NullString{String: string(t), Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO selected_raids (identity, character_name, position, raid_id, tier)
				 VALUES (?, ?, ?, ?, ?)`,
				record.Identity, character, position, raidID, tier,
			); err != nil {
				return nil, errors.Wrapf(err, "insert selected raid %d for %s", raidID, character)
			}
		}
	}

	for character, amount := range record.State.ExtraIncome {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO extra_incomes (identity, character_name, amount) VALUES (?, ?, ?)`,
			record.Identity, character, amount,
		); err != nil {
			return nil, errors.Wrapf(err, "insert extra income for %s", character)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit selections")
	}

	return &SaveOutput{Record: record}, nil
}

// List returns every identity with a saved record
func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT identity FROM player_selections ORDER BY identity`)
	if err != nil {
		return nil, errors.Wrap(err, "list player selections")
	}
	defer func() { _ = rows.Close() }()

	identities := make([]string, 0)
	for rows.Next() {
		var identity string
		if err := rows.Scan(&identity); err != nil {
			return nil, errors.Wrap(err, "scan identity")
		}
		identities = append(identities, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate identities")
	}

	return &ListOutput{Identities: identities}, nil
}

// applyMigrations runs each embedded migration at most once
func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return errors.Wrap(err, "ensure migration table")
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "list migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		name := strings.TrimPrefix(file, "migrations/")

		var applied int
		if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE name = ?`, name).Scan(&applied); err != nil {
			return errors.Wrapf(err, "check migration %s", name)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationFS.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", name)
		}

		tx, err := db.Begin()
		if err != nil {
			return errors.Wrapf(err, "begin migration %s", name)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "exec migration %s", name)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, name, time.Now().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "commit migration %s", name)
		}
	}

	return nil
}
