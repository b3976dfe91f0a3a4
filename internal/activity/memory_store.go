package activity

import (
	"context"
	"sort"
	"sync"

	"github.com/matthewbaird/showcase/internal/types"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store using in-memory slices.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []types.ActivityEntry
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) WriteEntries(_ context.Context, entries []types.ActivityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *MemoryStore) QueryByEntity(_ context.Context, entityType, entityID string, opts QueryOptions) ([]types.ActivityEntry, int, error) {
	return s.query(opts, func(e types.ActivityEntry) bool {
		return e.EntityType == entityType && e.EntityID == entityID
	})
}

func (s *MemoryStore) Recent(_ context.Context, opts QueryOptions) ([]types.ActivityEntry, int, error) {
	seen := map[string]bool{}
	return s.query(opts, func(e types.ActivityEntry) bool {
		// One row per event: skip the fan-out copies.
		if seen[e.EventID] {
			return false
		}
		seen[e.EventID] = true
		return true
	})
}

func (s *MemoryStore) query(opts QueryOptions, keep func(types.ActivityEntry) bool) ([]types.ActivityEntry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []types.ActivityEntry
	for _, e := range s.entries {
		if opts.Since != nil && e.OccurredAt.Before(*opts.Since) {
			continue
		}
		if !keep(e) {
			continue
		}
		matched = append(matched, e)
	}

	// Sort by occurred_at DESC; ties keep write order reversed.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].OccurredAt.After(matched[j].OccurredAt)
	})

	totalCount := len(matched)
	if limit := opts.limit(); len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, totalCount, nil
}
