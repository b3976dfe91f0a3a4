package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/matthewbaird/showcase/internal/database"
	"github.com/matthewbaird/showcase/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPortfolio(name, title string, skills ...string) types.Portfolio {
	d := NewDraft(types.TemplateSpotlight)
	d = Apply(d, HeroUpdate{Name: ptr(name), Title: ptr(title)})
	for _, s := range skills {
		d = Apply(d, SkillAdd{Value: s})
	}
	d = Apply(d, ServiceUpdate{Index: 0, Title: ptr("Consulting"), Description: ptr("Architecture reviews")})
	return Publish(d, "", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

func storeContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("AddAndList", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		a, err := store.Add(ctx, testPortfolio("Ravi", "Backend Engineer", "Go"))
		require.NoError(t, err)
		b, err := store.Add(ctx, testPortfolio("Meera", "Designer", "Figma"))
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)

		list, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Portfolio{a, b}, list)
	})

	t.Run("Get", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		in, err := store.Add(ctx, testPortfolio("Ravi", "Backend Engineer", "Go", "SQL"))
		require.NoError(t, err)

		got, err := store.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, in, got)

		_, err = store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store { return NewMemoryStore() })
}

func TestSQLStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		drv, err := database.OpenAndMigrate(context.Background(), "file::memory:?_pragma=foreign_keys(1)")
		require.NoError(t, err)
		t.Cleanup(func() { drv.Close() })
		return NewSQLStore(drv)
	})
}

func TestFilter(t *testing.T) {
	ps := []types.Portfolio{
		testPortfolio("Ravi Kumar", "Backend Engineer", "Go", "SQL"),
		testPortfolio("Meera Shah", "Product Designer", "Figma"),
		testPortfolio("Arjun Rao", "Full-stack Developer", "Go", "React"),
	}

	names := func(ps []types.Portfolio) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.Hero.Name)
		}
		return out
	}

	assert.Len(t, Filter(ps, Criteria{}), 3)
	assert.Len(t, Filter(ps, Criteria{Skill: SkillAll}), 3)
	assert.Equal(t, []string{"Meera Shah"}, names(Filter(ps, Criteria{Search: "figma", Skill: SkillAll})))
	assert.Equal(t, []string{"Ravi Kumar", "Arjun Rao"}, names(Filter(ps, Criteria{Skill: "Go"})))
	assert.Equal(t, []string{"Meera Shah"}, names(Filter(ps, Criteria{Search: "DESIGN"})))
	assert.Equal(t, []string{"Arjun Rao"}, names(Filter(ps, Criteria{Search: "react"})))
	assert.Equal(t, []string{"Arjun Rao"}, names(Filter(ps, Criteria{Search: "developer", Skill: "Go"})))
	assert.Empty(t, Filter(ps, Criteria{Skill: "go"}))
}

func TestSkills(t *testing.T) {
	ps := []types.Portfolio{
		testPortfolio("A", "x", "Go", "SQL"),
		testPortfolio("B", "y", "React", "Go"),
	}
	assert.Equal(t, []string{"Go", "React", "SQL"}, Skills(ps))
	assert.Equal(t, []string{}, Skills(nil))
}
