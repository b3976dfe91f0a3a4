// Package activity provides the activity store interface and an in-memory
// implementation backing the activity feed.
package activity

import (
	"context"
	"time"

	"github.com/matthewbaird/showcase/internal/types"
)

// Default and maximum page sizes for activity queries.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Store is the interface for reading and writing activity entries.
type Store interface {
	// WriteEntries writes one or more activity entries (one event → many entries).
	WriteEntries(ctx context.Context, entries []types.ActivityEntry) error

	// QueryByEntity returns activity entries for a specific entity, newest first.
	QueryByEntity(ctx context.Context, entityType, entityID string, opts QueryOptions) (entries []types.ActivityEntry, totalCount int, err error)

	// Recent returns the newest entries across all entities.
	Recent(ctx context.Context, opts QueryOptions) (entries []types.ActivityEntry, totalCount int, err error)
}

// QueryOptions controls filtering and pagination for activity queries.
type QueryOptions struct {
	Since *time.Time // only entries at or after this instant
	Limit int        // max results (default: 50, max: 500)
}

func (o QueryOptions) limit() int {
	if o.Limit <= 0 || o.Limit > MaxLimit {
		return DefaultLimit
	}
	return o.Limit
}
