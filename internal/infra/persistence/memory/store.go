// Package memory holds snapshots in process memory. It backs tests and
// local development, standing in for the browser's localStorage.
package memory

import (
	"context"
	"sync"

	"example.com/clothing-shop/internal/domain/storage"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	cloned := make([]byte, len(value))
	copy(cloned, value)
	return cloned, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := make([]byte, len(value))
	copy(cloned, value)
	s.data[key] = cloned
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
