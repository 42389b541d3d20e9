// internal/adapters/localstore/localstore.go
package localstore

import (
	"context"
	"encoding/json"
	"os"
	"sync"
)

// Store is a file-backed string key/value store standing in for the
// browser's localStorage. The whole map is rewritten on every mutation,
// mirroring the replace-on-write behavior of the original store: two
// overlapping read-modify-write flows against the same key are
// last-writer-wins by design.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewStore opens the store at path, loading existing contents if present.
// A missing or unreadable file starts the store empty; corrupt JSON is
// discarded rather than propagated. An empty path keeps the store purely
// in memory.
func NewStore(path string) *Store {
	s := &Store{path: path, data: make(map[string]string)}
	if path == "" {
		return s
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return s
	}
	s.data = data
	return s
}

// Get returns the value for key, or "" when the key is absent. A missing
// key is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

// flush persists the whole map. Caller must hold mu.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
