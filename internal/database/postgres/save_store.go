// Package postgres provides the PostgreSQL-backed save store.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

const (
	sqlSelectSave = `SELECT blob FROM game_saves WHERE save_key = $1`
	sqlUpsertSave = `
		INSERT INTO game_saves (save_key, blob, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (save_key) DO UPDATE
		SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at`
	sqlDeleteSave = `DELETE FROM game_saves WHERE save_key = $1`
)

// SaveStore persists save blobs in the game_saves table.
// The pool is owned by the caller; Close does not close it.
type SaveStore struct {
	db *pgxpool.Pool
}

// NewSaveStore wraps a migrated pool
func NewSaveStore(db *pgxpool.Pool) *SaveStore {
	return &SaveStore{db: db}
}

// Get returns the blob stored under key
func (s *SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow(ctx, sqlSelectSave, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get save %q: %w", key, err)
	}
	return blob, nil
}

// Put inserts or replaces the blob under key
func (s *SaveStore) Put(ctx context.Context, key string, blob []byte) error {
	if _, err := s.db.Exec(ctx, sqlUpsertSave, key, blob); err != nil {
		return fmt.Errorf("put save %q: %w", key, err)
	}
	return nil
}

// Delete removes the save under key
func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, sqlDeleteSave, key); err != nil {
		return fmt.Errorf("delete save %q: %w", key, err)
	}
	return nil
}

// CheckHealth pings the pool
func (s *SaveStore) CheckHealth(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close is a no-op; the pool is closed by its owner
func (s *SaveStore) Close() error { return nil }
