package repository

import "context"

// SaveStore persists one serialized save blob per key.
// Get returns domain.ErrSaveNotFound when the key has no save.
type SaveStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
