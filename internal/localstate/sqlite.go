package localstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

const schema = `
CREATE TABLE IF NOT EXISTS local_state (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    expires_at INTEGER
)`

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps local state in a single-table SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path. ":memory:" is accepted for tests.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}

	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create local state schema: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var (
		value     string
		expiresAt sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, `SELECT value, expires_at FROM local_state WHERE key = ?`, key).
		Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.ErrNotFound
	}

	if err != nil {
		return "", errs.Store("get local state", err)
	}

	if expiresAt.Valid && s.now().Unix() >= expiresAt.Int64 {
		return "", errs.ErrNotFound
	}

	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var expiresAt sql.NullInt64
	if ttl > 0 {
		expiresAt = sql.NullInt64{Int64: s.now().Add(ttl).Unix(), Valid: true}
	}

	query := `
		INSERT INTO local_state (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		return errs.Store("set local state", err)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM local_state WHERE key = ?`, key); err != nil {
		return errs.Store("delete local state", err)
	}

	return nil
}

func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	query := `
		SELECT key FROM local_state
		WHERE substr(key, 1, length(?)) = ? AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY key
	`

	rows, err := s.db.QueryContext(ctx, query, prefix, prefix, s.now().Unix())
	if err != nil {
		return nil, errs.Store("list local state", err)
	}
	defer rows.Close()

	var keys []string

	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errs.Store("scan local state", err)
		}

		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.Store("list local state", err)
	}

	return keys, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
