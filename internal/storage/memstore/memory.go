// Package memstore keeps documents in process memory. The server uses it for
// throwaway instances; tests across the repository use it as a fake backend.
package memstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/moodyssey/internal/storage"
)

// Store is an in-process storage.Backend.
type Store struct {
	mu   sync.Mutex
	docs map[string][]byte

	// ReadErr and WriteErr, when set, are returned by every call.
	ReadErr  error
	WriteErr error
}

func New() *Store {
	return &Store{docs: map[string][]byte{}}
}

func (m *Store) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.docs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *Store) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.docs[key] = append([]byte(nil), data...)
	return nil
}

// Put stores raw bytes under key, bypassing WriteErr.
func (m *Store) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = append([]byte(nil), data...)
}

// Get returns the raw bytes under key.
func (m *Store) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[key]
	return data, ok
}
