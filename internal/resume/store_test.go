package resume

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matthewbaird/showcase/internal/database"
	"github.com/matthewbaird/showcase/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 10, 8, 30, 0, 0, time.UTC)

func storeContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("CreateAndGet", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		a, err := store.Create(ctx, Sample(types.ResumeTemplateTech))
		require.NoError(t, err)
		b, err := store.Create(ctx, Blank(types.ResumeTemplateMinimal))
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, testNow, a.UpdatedAt)

		got, err := store.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, got)

		_, err = store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		in, err := store.Create(ctx, Blank(types.ResumeTemplateModern))
		require.NoError(t, err)

		out, err := store.Update(ctx, in.ID, func(r types.Resume) types.Resume {
			return Apply(r, PersonalInfoUpdate{Name: ptr("Priya Nair")})
		})
		require.NoError(t, err)
		assert.Equal(t, in.ID, out.ID)
		assert.Equal(t, "Priya Nair", out.PersonalInfo.Name)

		got, err := store.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, out, got)

		_, err = store.Update(ctx, "missing", func(r types.Resume) types.Resume { return r })
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ConcurrentUpdates", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		in, err := store.Create(ctx, Blank(types.ResumeTemplateModern))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, in.ID, func(r types.Resume) types.Resume {
					return Apply(r, SkillAdd{Name: "Go"})
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := store.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.Len(t, got.Skills, 10)
	})

	t.Run("Delete", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		in, err := store.Create(ctx, Blank(types.ResumeTemplateModern))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, in.ID))
		assert.ErrorIs(t, store.Delete(ctx, in.ID), ErrNotFound)
		_, err = store.Get(ctx, in.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		s := NewMemoryStore()
		s.now = func() time.Time { return testNow }
		return s
	})
}

func TestSQLStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		drv, err := database.OpenAndMigrate(context.Background(), "file::memory:?_pragma=foreign_keys(1)")
		require.NoError(t, err)
		t.Cleanup(func() { drv.Close() })
		s := NewSQLStore(drv)
		s.now = func() time.Time { return testNow }
		return s
	})
}
