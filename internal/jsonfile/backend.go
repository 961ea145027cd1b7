// Package jsonfile implements the JSON file backend for the item store.
// The whole Inventory lives in one JSON object mapping item names to
// quantities, for example {"Protein Shake": 12, "Aloe Vera": 3}.
package jsonfile

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

//go:embed schema.json
var schemaJSON string

// Backend implements types.Persister on top of a single JSON file.
type Backend struct {
	mu        sync.Mutex
	path      string
	writeMode string
	schema    *gojsonschema.Schema
	closed    bool
}

// Open creates a JSON backend for cfg.StorePath(). The parent directory is
// created if needed; the file itself is not touched until the first Save.
func Open(cfg types.Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := cfg.StorePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile inventory schema: %w", err)
	}

	return &Backend{
		path:      path,
		writeMode: cfg.GetWriteMode(),
		schema:    schema,
	}, nil
}

// Path returns the file the backend reads and writes.
func (b *Backend) Path() string {
	return b.path
}

// Load reads the inventory file. A missing file yields an empty Inventory.
// Every other failure is returned: read errors are wrapped as is, and
// content that is not an object of non-negative integers wraps
// types.ErrMalformedData.
func (b *Backend) Load() (*types.Inventory, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, types.ErrStoreClosed
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.NewInventory(), nil
		}
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}

	if err := b.checkShape(data); err != nil {
		return nil, fmt.Errorf("%s: %w", b.path, err)
	}

	inv, err := decodeInventory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.path, err)
	}
	return inv, nil
}

// Save serializes inv and replaces the file contents.
func (b *Backend) Save(inv *types.Inventory) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.ErrStoreClosed
	}

	data, err := encodeInventory(inv)
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	if b.writeMode == types.WriteAtomic {
		return writeAtomic(b.path, data)
	}
	return writeTruncate(b.path, data)
}

// Close marks the backend closed. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	return nil
}

// checkShape validates data against the embedded inventory schema.
func (b *Backend) checkShape(data []byte) error {
	result, err := b.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedData, err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("%w: %s", types.ErrMalformedData, first.String())
	}
	return nil
}
