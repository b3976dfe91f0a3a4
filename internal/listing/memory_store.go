package listing

import (
	"context"
	"sync"

	"github.com/matthewbaird/showcase/internal/types"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store with an in-memory slice. It is the default
// backend; state lives for the lifetime of the process.
type MemoryStore struct {
	mu         sync.RWMutex
	properties []types.Property
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(_ context.Context, candidate types.Property) (types.Property, error) {
	candidate.ID = newID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = append(s.properties, candidate)
	return candidate, nil
}

func (s *MemoryStore) List(_ context.Context) ([]types.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Property, len(s.properties))
	copy(out, s.properties)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (types.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Property{}, ErrNotFound
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.properties), nil
}
