// Package memory provides a process-local save store for tests and throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

// Store keeps save blobs in a map
type Store struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// New returns an empty store
func New() *Store {
	return &Store{saves: make(map[string][]byte)}
}

// Get returns a copy of the blob under key
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.saves[key]
	if !ok {
		return nil, domain.ErrSaveNotFound
	}
	return append([]byte(nil), blob...), nil
}

// Put stores a copy of blob under key
func (s *Store) Put(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[key] = append([]byte(nil), blob...)
	return nil
}

// Delete removes key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saves, key)
	return nil
}

// Len reports how many saves are stored
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saves)
}

// CheckHealth always succeeds
func (s *Store) CheckHealth(context.Context) error { return nil }

// Close is a no-op
func (s *Store) Close() error { return nil }
