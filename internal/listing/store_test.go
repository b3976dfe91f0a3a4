package listing

import (
	"context"
	"testing"

	"github.com/matthewbaird/showcase/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	drv, err := database.OpenAndMigrate(context.Background(), "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { drv.Close() })
	return NewSQLStore(drv)
}

// storeContract runs the behaviour every Store implementation shares.
func storeContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("AddAssignsUniqueIDsInOrder", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		seen := map[string]bool{}
		for _, p := range demoListings() {
			stored, err := store.Add(ctx, p)
			require.NoError(t, err)
			assert.NotEqual(t, p.ID, stored.ID, "caller-supplied id must be replaced")
			assert.False(t, seen[stored.ID], "duplicate id %s", stored.ID)
			seen[stored.ID] = true
		}

		list, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 8)
		for i, want := range demoListings() {
			assert.Equal(t, want.Name, list[i].Name)
		}
	})

	t.Run("AddLeavesExistingEntitiesUntouched", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		first, err := store.Add(ctx, demoListings()[0])
		require.NoError(t, err)
		before, err := store.List(ctx)
		require.NoError(t, err)

		_, err = store.Add(ctx, demoListings()[1])
		require.NoError(t, err)
		after, err := store.List(ctx)
		require.NoError(t, err)

		require.Len(t, after, 2)
		assert.Equal(t, before[0], after[0])
		assert.Equal(t, first.ID, after[0].ID)
	})

	t.Run("RoundTripsEveryField", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		in := demoListings()[5]
		in.Featured = true
		in.Coordinates.Lat = 28.4595
		in.Coordinates.Lng = 77.0266

		stored, err := store.Add(ctx, in)
		require.NoError(t, err)
		got, err := store.Get(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := newStore(t).Get(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Count", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		_, err = store.Add(ctx, demoListings()[2])
		require.NoError(t, err)
		n, err = store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store { return NewMemoryStore() })
}

func TestSQLStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store { return newSQLStore(t) })
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Add(ctx, demoListings()[0])
	require.NoError(t, err)

	list, _ := store.List(ctx)
	list[0].Name = "mutated"

	again, _ := store.List(ctx)
	assert.Equal(t, "Luxury Sea View Apartment", again[0].Name)
}
