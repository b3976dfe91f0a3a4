package listing

import (
	"context"
	"fmt"

	"github.com/matthewbaird/showcase/internal/types"
)

// Catalog composes the store, the validator and the filter engine into
// the operations the dashboard consumes.
type Catalog struct {
	store Store
}

// NewCatalog creates a Catalog over store.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// Submit validates s and, only when it is valid, normalizes it and adds
// it to the store. On validation failure the field errors are returned
// and the store is untouched.
func (c *Catalog) Submit(ctx context.Context, s Submission) (types.Property, FieldErrors, error) {
	if errs := Validate(s); !errs.Empty() {
		return types.Property{}, errs, nil
	}
	p, err := c.store.Add(ctx, Normalize(s))
	if err != nil {
		return types.Property{}, nil, fmt.Errorf("adding property: %w", err)
	}
	return p, nil, nil
}

// Browse re-derives the visible listings from the current collection.
func (c *Catalog) Browse(ctx context.Context, criteria Criteria) ([]types.Property, error) {
	all, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	return Filter(all, criteria), nil
}

// All returns the full collection in insertion order.
func (c *Catalog) All(ctx context.Context) ([]types.Property, error) {
	return c.store.List(ctx)
}

// Get returns one property by id.
func (c *Catalog) Get(ctx context.Context, id string) (types.Property, error) {
	return c.store.Get(ctx, id)
}
