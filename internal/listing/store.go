// Package listing holds the property slice: the entity store, the filter
// engine that derives the visible listings, and the validated submission
// path that feeds new properties into the store.
package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/matthewbaird/showcase/internal/types"
)

// ErrNotFound is returned when no property has the requested id.
var ErrNotFound = errors.New("property not found")

// Store is the authoritative collection of committed properties. It does
// not validate: callers run Validate before Add.
type Store interface {
	// Add assigns a fresh id to candidate (any caller-set id is ignored),
	// appends it and returns the stored record.
	Add(ctx context.Context, candidate types.Property) (types.Property, error)

	// List returns every property in insertion order.
	List(ctx context.Context) ([]types.Property, error)

	// Get returns the property with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (types.Property, error)

	// Count returns the number of stored properties.
	Count(ctx context.Context) (int, error)
}

// newID returns a time-ordered UUIDv7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
