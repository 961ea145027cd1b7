package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func openTestBackend(t *testing.T, dataDir string) *Backend {
	t.Helper()

	b, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestOpenCreatesEmptyStore(t *testing.T) {
	dir := t.TempDir()
	b := openTestBackend(t, dir)

	assert.Equal(t, filepath.Join(dir, types.DefaultSQLiteFile), b.Path())
	inv, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := openTestBackend(t, dir)

	inv := types.NewInventory()
	require.NoError(t, inv.Set("Protein Shake", 12))
	require.NoError(t, inv.Set("Aloe Vera", 3))
	require.NoError(t, inv.Set("apricot", 0))
	require.NoError(t, b.Save(inv))

	require.NoError(t, b.Close())
	reopened := openTestBackend(t, dir)

	got, err := reopened.Load()
	require.NoError(t, err)
	assert.True(t, inv.Equal(got))
	assert.Equal(t, []string{"Protein Shake", "Aloe Vera", "apricot"}, got.Names())
}

func TestSaveReplacesRows(t *testing.T) {
	b := openTestBackend(t, t.TempDir())

	first := types.NewInventory()
	require.NoError(t, first.Set("a", 1))
	require.NoError(t, first.Set("b", 2))
	require.NoError(t, b.Save(first))

	second := types.NewInventory()
	require.NoError(t, second.Set("b", 7))
	require.NoError(t, b.Save(second))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.Names())
	q, _ := got.Get("b")
	assert.Equal(t, 7, q)
}

// storedID reads the item_id row for name.
func storedID(t *testing.T, b *Backend, name string) string {
	t.Helper()
	var id string
	require.NoError(t, b.db.QueryRow(`SELECT item_id FROM items WHERE name = ?`, name).Scan(&id))
	return id
}

func TestItemIDStableAcrossSaves(t *testing.T) {
	b := openTestBackend(t, t.TempDir())

	inv := types.NewInventory()
	require.NoError(t, inv.Set("a", 1))
	require.NoError(t, b.Save(inv))

	id1 := storedID(t, b, "a")
	_, err := uuid.Parse(id1)
	require.NoError(t, err)

	require.NoError(t, inv.Set("a", 5))
	require.NoError(t, inv.Set("b", 1))
	require.NoError(t, b.Save(inv))

	assert.Equal(t, id1, storedID(t, b, "a"))
	assert.NotEqual(t, id1, storedID(t, b, "b"))
}

func TestSchemaRejectsNegativeQuantity(t *testing.T) {
	dir := t.TempDir()
	b := openTestBackend(t, dir)
	require.NoError(t, b.Close())

	db, err := sql.Open("sqlite", filepath.Join(dir, types.DefaultSQLiteFile))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO items (item_id, name, quantity, position) VALUES ('x', 'x', -1, 0)`)
	assert.Error(t, err)
}

func TestClosedBackend(t *testing.T) {
	b := openTestBackend(t, t.TempDir())
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, err := b.Load()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, b.Save(types.NewInventory()), types.ErrStoreClosed)
}
