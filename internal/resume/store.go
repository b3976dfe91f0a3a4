package resume

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/matthewbaird/showcase/internal/types"
)

// ErrNotFound is returned when no resume has the requested id.
var ErrNotFound = errors.New("resume not found")

// Store holds resumes under edit.
type Store interface {
	// Create assigns a fresh id to r and saves it.
	Create(ctx context.Context, r types.Resume) (types.Resume, error)

	// Get returns the resume with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (types.Resume, error)

	// Update replaces the resume with fn's result. fn sees the current
	// version and no other Update on the same id runs concurrently.
	Update(ctx context.Context, id string, fn func(types.Resume) types.Resume) (types.Resume, error)

	// Delete removes the resume or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store in memory.
type MemoryStore struct {
	mu      sync.Mutex
	resumes map[string]types.Resume
	now     func() time.Time
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{resumes: make(map[string]types.Resume), now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, r types.Resume) (types.Resume, error) {
	r = Clone(r)
	r.ID = newID()
	r.UpdatedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes[r.ID] = r
	return Clone(r), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (types.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resumes[id]
	if !ok {
		return types.Resume{}, ErrNotFound
	}
	return Clone(r), nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(types.Resume) types.Resume) (types.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.resumes[id]
	if !ok {
		return types.Resume{}, ErrNotFound
	}
	next := Clone(fn(Clone(cur)))
	next.ID = id
	next.UpdatedAt = s.now()
	s.resumes[id] = next
	return Clone(next), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resumes[id]; !ok {
		return ErrNotFound
	}
	delete(s.resumes, id)
	return nil
}
