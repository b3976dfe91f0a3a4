// Package seed loads the demo property catalog and seeds it into a store.
// The catalog is CUE data unified with an embedded schema, so a malformed
// entry fails at load time rather than reaching the store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"github.com/matthewbaird/showcase/internal/listing"
	"github.com/matthewbaird/showcase/internal/types"
	"go.uber.org/zap"
)

//go:embed schema.cue
var schemaSource []byte

//go:embed catalog.cue
var catalogSource []byte

// DemoCatalog returns the eight built-in demo properties, without ids.
func DemoCatalog() ([]types.Property, error) {
	return LoadCatalog("catalog.cue", catalogSource)
}

// LoadCatalogFile reads and validates a catalog from disk.
func LoadCatalogFile(path string) ([]types.Property, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return LoadCatalog(path, src)
}

// LoadCatalog validates src against the property schema and decodes its
// properties list. Defaults declared in the schema (image, featured,
// short_description) are filled in.
func LoadCatalog(filename string, src []byte) ([]types.Property, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, fmt.Errorf("compiling %s: %s", filename, errors.Details(err, nil))
	}

	val := schema.Unify(data)
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating %s: %s", filename, errors.Details(err, nil))
	}

	var props []types.Property
	if err := val.LookupPath(cue.ParsePath("properties")).Decode(&props); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return props, nil
}

// SeedProperties adds props to store through the normal Add path. If the
// store already holds properties it skips seeding.
func SeedProperties(ctx context.Context, store listing.Store, props []types.Property) error {
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking properties: %w", err)
	}
	if count > 0 {
		zap.L().Info("properties already seeded, skipping", zap.Int("count", count))
		return nil
	}

	for _, p := range props {
		if _, err := store.Add(ctx, p); err != nil {
			return fmt.Errorf("seeding %q: %w", p.Name, err)
		}
	}
	zap.L().Info("seeded properties", zap.Int("count", len(props)))
	return nil
}
