// Package stockroom provides the public API for opening Stockroom
// persistence backends while keeping implementation details internal.
package stockroom

import (
	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// NewPersister opens the backend named by cfg.Backend.
//
// Example:
//
//	p, err := stockroom.NewPersister(types.Config{
//	    Backend: types.BackendJSON,
//	    DataDir: ".",
//	})
//	defer p.Close()
//	inv, err := p.Load()
func NewPersister(cfg types.Config) (types.Persister, error) {
	return inventory.OpenPersister(cfg)
}
