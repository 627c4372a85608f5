package store

import (
	"context"
	"sync"

	"github.com/vippsas/docwiki/wikidoc"
)

// MemStore is the in-memory default Store: a mutex-guarded map, the same
// "small map-backed collaborator" shape as the teacher's mapfs.MapFS
// (go/mapfs/mapfs.go), generalized here from a filename->path map to a
// content-key->Comment cache with the concurrency guard mapfs didn't need
// (mapfs is built once and read-only afterward; this cache is guarded so it
// is safe for concurrent Get and Put calls).
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]wikidoc.Comment
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]wikidoc.Comment)}
}

func (m *MemStore) Get(_ context.Context, key string) (wikidoc.Comment, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.entries[key]
	return c, ok, nil
}

func (m *MemStore) Put(_ context.Context, key string, c wikidoc.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = c
	return nil
}
