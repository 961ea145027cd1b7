package stockroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestNewPersister(t *testing.T) {
	for _, backend := range []string{types.BackendJSON, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			p, err := NewPersister(types.Config{Backend: backend, DataDir: t.TempDir()})
			require.NoError(t, err)
			defer p.Close()

			inv := types.NewInventory()
			require.NoError(t, inv.Set("Protein Shake", 12))
			require.NoError(t, p.Save(inv))

			got, err := p.Load()
			require.NoError(t, err)
			assert.True(t, inv.Equal(got))
		})
	}
}

func TestNewPersisterRejectsUnknownBackend(t *testing.T) {
	_, err := NewPersister(types.Config{Backend: "mongo"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
