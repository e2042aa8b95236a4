package sql_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/reach"
	"github.com/syssam/reach/cache"
	"github.com/syssam/reach/dialect"
	sqlsource "github.com/syssam/reach/dialect/sql"
)

// openSQLite opens a throwaway file-backed database with the item tables
// created.
func openSQLite(t *testing.T) *sqlsource.Source {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "model.db")
	src, err := sqlsource.Open(dialect.SQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	require.NoError(t, src.CreateSchema(context.Background()))
	return src
}

func exec(t *testing.T, src *sqlsource.Source, query string, args ...any) {
	t.Helper()
	_, err := src.DB().Exec(query, args...)
	require.NoError(t, err)
}

func TestSQLiteClassRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openSQLite(t)

	exec(t, src, "INSERT INTO entity_classes (id, name, is_valid) VALUES (1, 'Any', TRUE), (2, 'A', TRUE), (3, 'AnyAny', TRUE)")
	exec(t, src, "INSERT INTO entity_class_dimensions (class_id, position, dimension_id) VALUES (3, 0, 1), (3, 1, 1)")
	exec(t, src, "INSERT INTO subclass_declarations (id, subclass_id, superclass_id, is_valid) VALUES (10, 2, 1, TRUE)")

	c := cache.New(cache.ClassBuilder{})

	ok, err := c.IsReachable(ctx, src, 3, 2)
	require.NoError(t, err)
	assert.True(t, ok, "AnyAny reaches A through substitution")

	ok, err = c.IsReachable(ctx, src, 2, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	// Soft-delete the declaration; the cached snapshot answers until the
	// mutation is routed through invalidation.
	exec(t, src, "UPDATE subclass_declarations SET is_valid = FALSE WHERE id = 10")
	ok, err = c.IsReachable(ctx, src, 3, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	c.InvalidateChanged(reach.KindSubclassOf, map[reach.Source][]reach.Item{src: nil})
	ok, err = c.IsReachable(ctx, src, 3, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteEntityRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openSQLite(t)

	exec(t, src, "INSERT INTO entities (id, class_id, is_valid) VALUES (1, 100, TRUE), (2, 100, TRUE), (3, 200, TRUE)")
	exec(t, src, "INSERT INTO entity_elements (entity_id, position, element_id) VALUES (3, 0, 1), (3, 1, 2)")

	c := cache.New(cache.EntityBuilder{})

	ok, err := c.IsReachable(ctx, src, 3, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.IsReachable(ctx, src, 1, 2, 3)
	require.NoError(t, err)
	assert.False(t, ok, "leaf entities have no ancestry")
}

func TestSQLiteEmptyModel(t *testing.T) {
	ctx := context.Background()
	src := openSQLite(t)

	items, err := src.MappedTable(ctx, reach.KindEntityClass)
	require.NoError(t, err)
	assert.Empty(t, items)

	c := cache.New(cache.ClassBuilder{})
	_, err = c.IsReachable(ctx, src, 1, 2)
	require.Error(t, err)
	assert.True(t, reach.IsNodeNotFound(err), "nothing was built, so nothing is a node")
}
