package portfolio

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/matthewbaird/showcase/internal/types"
)

// ErrNotFound is returned when no portfolio has the requested id.
var ErrNotFound = errors.New("portfolio not found")

// Store holds published portfolios.
type Store interface {
	// Add assigns a fresh id to p and appends it.
	Add(ctx context.Context, p types.Portfolio) (types.Portfolio, error)

	// List returns every portfolio in publication order.
	List(ctx context.Context) ([]types.Portfolio, error)

	// Get returns the portfolio with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (types.Portfolio, error)
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store in memory.
type MemoryStore struct {
	mu         sync.RWMutex
	portfolios []types.Portfolio
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(_ context.Context, p types.Portfolio) (types.Portfolio, error) {
	p.ID = newID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios = append(s.portfolios, p)
	return p, nil
}

func (s *MemoryStore) List(_ context.Context) ([]types.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Portfolio, len(s.portfolios))
	copy(out, s.portfolios)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (types.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.portfolios {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Portfolio{}, ErrNotFound
}
