// Package sqlite provides the default SQLite-backed save store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/PortalQuest_Go/internal/database"
	"github.com/osse101/PortalQuest_Go/internal/domain"
)

const (
	dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	sqlSelectSave = `SELECT blob FROM game_saves WHERE save_key = ?`
	sqlUpsertSave = `
		INSERT INTO game_saves (save_key, blob, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (save_key) DO UPDATE
		SET blob = excluded.blob, updated_at = excluded.updated_at`
	sqlDeleteSave = `DELETE FROM game_saves WHERE save_key = ?`
)

// Store persists save blobs in SQLite
type Store struct {
	db *sql.DB
}

// Open opens the database at path and applies embedded migrations.
// ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + dsnPragmas
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer; also keeps a :memory: database alive across calls
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := database.MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the blob stored under key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, sqlSelectSave, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get save %q: %w", key, err)
	}
	return blob, nil
}

// Put inserts or replaces the blob under key
func (s *Store) Put(ctx context.Context, key string, blob []byte) error {
	if _, err := s.db.ExecContext(ctx, sqlUpsertSave, key, blob, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("put save %q: %w", key, err)
	}
	return nil
}

// Delete removes the save under key; deleting a missing key is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, sqlDeleteSave, key); err != nil {
		return fmt.Errorf("delete save %q: %w", key, err)
	}
	return nil
}

// CheckHealth pings the database
func (s *Store) CheckHealth(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
