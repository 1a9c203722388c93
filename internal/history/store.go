// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed conversions and calculations in a
// local SQLite database and exports them to YAML or JSON.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/base-converter/pkg/types"
)

const dbFile = "history.db"

// Store manages the operation history SQLite database.
type Store struct {
	db         *sql.DB
	historyDir string
	maxResults int
}

// NewStore opens or creates the history database at
// historyDir/history.db, creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		historyDir: cfg.HistoryDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			expression TEXT NOT NULL,
			source_base INTEGER NOT NULL,
			target_base INTEGER NOT NULL,
			result TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_operations_kind ON operations(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one completed operation. A zero CreatedAt is filled
// with the current UTC time.
func (s *Store) Record(ctx context.Context, rec types.OperationRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (kind, expression, source_base, target_base, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(rec.Kind), rec.Expression, rec.SourceBase, rec.TargetBase,
		rec.Result, created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording operation: %w", err)
	}
	return nil
}

// QueryOptions holds filters for history queries.
type QueryOptions struct {
	// Kind filters by operation kind ("convert" or "calc").
	Kind types.OperationKind

	// Base filters operations whose source or target base matches.
	Base int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// List returns recorded operations, newest first, applying opts.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.OperationRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	query := `SELECT id, kind, expression, source_base, target_base, result, created_at
		FROM operations WHERE 1=1`
	var args []any

	if opts.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(opts.Kind))
	}
	if opts.Base != 0 {
		query += ` AND (source_base = ? OR target_base = ?)`
		args = append(args, opts.Base, opts.Base)
	}

	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.OperationRecord
	for rows.Next() {
		var (
			rec     types.OperationRecord
			kind    string
			created string
		)
		if err := rows.Scan(
			&rec.ID, &kind, &rec.Expression, &rec.SourceBase,
			&rec.TargetBase, &rec.Result, &created,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		rec.Kind = types.OperationKind(kind)
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Clear deletes all recorded operations.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM operations`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
