package database

import (
	"context"
	"testing"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	drv, err := OpenAndMigrate(ctx, "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer drv.Close()

	require.NoError(t, Migrate(ctx, drv))

	for _, table := range []string{PropertiesTableName, PortfoliosTableName, ResumesTableName} {
		rows := &entsql.Rows{}
		err := drv.Query(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", []any{table}, rows)
		require.NoError(t, err)
		found := rows.Next()
		require.NoError(t, rows.Close())
		assert.True(t, found, "table %s", table)
	}
}
