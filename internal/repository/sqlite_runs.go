package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// SQLiteRunsRepository stores optimization runs in a local SQLite file. Used
// by the CLI and by servers started with HISTORY_DRIVER=sqlite.
type SQLiteRunsRepository struct {
	db *sql.DB
}

var _ RunsRepositoryInterface = (*SQLiteRunsRepository)(nil)

// NewSQLiteRunsRepository opens (creating if needed) the database at path and
// applies pending migrations.
func NewSQLiteRunsRepository(path string) (*SQLiteRunsRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)

	r := &SQLiteRunsRepository{db: db}
	if err := r.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

// Close closes the database.
func (r *SQLiteRunsRepository) Close() error {
	return r.db.Close()
}

// HealthCheck pings the database.
func (r *SQLiteRunsRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create inserts run, assigning its ID and CreatedAt when empty.
func (r *SQLiteRunsRepository) Create(ctx context.Context, run *model.OptimizationRun) error {
	fillRunDefaults(run)

	inputJSON, err := json.Marshal(run.Input)
	if err != nil {
		return fmt.Errorf("encode input: %w", err)
	}
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO optimization_runs
		(id, request_id, source, quantity, offer_count, cost, satisfied,
		 violation_count, duration_us, input_json, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.RequestID,
		run.Source,
		run.Input.Quantity,
		len(run.Input.Offers),
		run.Result.Cost,
		run.Satisfied,
		len(run.Result.Violations),
		run.DurationUS,
		string(inputJSON),
		string(resultJSON),
		run.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	return err
}

// Get returns the run with the given id or ErrRunNotFound.
func (r *SQLiteRunsRepository) Get(ctx context.Context, id string) (*model.OptimizationRun, error) {
	row := r.db.QueryRowContext(ctx, selectRunColumns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// List returns runs newest first.
func (r *SQLiteRunsRepository) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	where, args := sqliteRunFilter(opts)
	query := selectRunColumns + where + ` ORDER BY created_at DESC`

	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // no limit
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, opts.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	runs := []model.OptimizationRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Count returns the number of runs matching opts, ignoring Limit and Skip.
func (r *SQLiteRunsRepository) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	where, args := sqliteRunFilter(opts)
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM optimization_runs`+where, args...).Scan(&count)
	return count, err
}

// sqliteTimeLayout is fixed-width so that created_at sorts lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

const selectRunColumns = `
	SELECT id, request_id, source, satisfied, duration_us, input_json, result_json, created_at
	FROM optimization_runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*model.OptimizationRun, error) {
	var (
		run        model.OptimizationRun
		inputJSON  string
		resultJSON string
		createdAt  string
	)
	if err := row.Scan(
		&run.ID,
		&run.RequestID,
		&run.Source,
		&run.Satisfied,
		&run.DurationUS,
		&inputJSON,
		&resultJSON,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(inputJSON), &run.Input); err != nil {
		return nil, fmt.Errorf("decode input of run %s: %w", run.ID, err)
	}
	run.Result = model.NewOptimizeResult()
	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("decode result of run %s: %w", run.ID, err)
	}
	ts, err := time.Parse(sqliteTimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of run %s: %w", run.ID, err)
	}
	run.CreatedAt = ts
	return &run, nil
}

func sqliteRunFilter(opts model.RunQueryOptions) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if opts.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, opts.Source)
	}
	if opts.Satisfied != nil {
		clauses = append(clauses, "satisfied = ?")
		args = append(args, *opts.Satisfied)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// sqliteMigration is a versioned schema change applied inside a transaction.
type sqliteMigration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

var sqliteMigrations = []sqliteMigration{
	{Version: 1, Name: "create_optimization_runs", Up: migration001CreateRuns},
	{Version: 2, Name: "add_violation_count", Up: migration002AddViolationCount},
}

func (r *SQLiteRunsRepository) runMigrations() error {
	if _, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := r.appliedMigrations()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, m := range sqliteMigrations {
		if applied[m.Version] {
			continue
		}

		tx, err := r.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.Version, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("Applied history migration")
	}

	return nil
}

func (r *SQLiteRunsRepository) appliedMigrations() (map[int]bool, error) {
	applied := make(map[int]bool)

	rows, err := r.db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func migration001CreateRuns(tx *sql.Tx) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS optimization_runs (
			id TEXT PRIMARY KEY,
			request_id TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL,
			quantity REAL NOT NULL,
			offer_count INTEGER NOT NULL,
			cost REAL NOT NULL,
			satisfied BOOLEAN NOT NULL DEFAULT 0,
			duration_us INTEGER NOT NULL DEFAULT 0,
			input_json TEXT NOT NULL,
			result_json TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_optimization_runs_created_at
		 ON optimization_runs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_optimization_runs_source
		 ON optimization_runs(source)`,
	}
	for _, q := range queries {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func migration002AddViolationCount(tx *sql.Tx) error {
	if _, err := tx.Exec(`ALTER TABLE optimization_runs ADD COLUMN violation_count INTEGER NOT NULL DEFAULT 0`); err != nil {
		return err
	}
	_, err := tx.Exec(`UPDATE optimization_runs SET violation_count = json_array_length(result_json, '$.violations')`)
	return err
}
