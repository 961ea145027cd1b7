// Package sqlite implements the SQLite backend for the Stockroom item store.
// The Inventory is stored as rows of a single items table; every Save
// rewrites the table inside one transaction, so the database always holds
// exactly the last saved Inventory.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Backend implements types.Persister using a SQLite database file.
type Backend struct {
	mu     sync.Mutex
	path   string
	db     *sql.DB
	closed bool
}

// Open creates the data directory if needed, opens the database at
// cfg.StorePath(), and ensures the schema exists.
func Open(cfg types.Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := cfg.StorePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// A single connection keeps the file exclusively owned by this process.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &Backend{path: path, db: db}, nil
}

// Path returns the database file path.
func (b *Backend) Path() string {
	return b.path
}

// Load reads all items ordered by position.
func (b *Backend) Load() (*types.Inventory, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := b.db.Query(`SELECT name, quantity FROM items ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	inv := types.NewInventory()
	for rows.Next() {
		var name string
		var qty int
		if err := rows.Scan(&name, &qty); err != nil {
			return nil, fmt.Errorf("%w: scan item: %v", types.ErrMalformedData, err)
		}
		if err := inv.Set(name, qty); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", types.ErrMalformedData, name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return inv, nil
}

// Save replaces the items table with inv. Names that survive keep their
// item_id; new names get a fresh UUID v7.
func (b *Backend) Save(inv *types.Inventory) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.ErrStoreClosed
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	ids, err := existingIDs(tx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO items (item_id, name, quantity, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	pos := 0
	for name, qty := range inv.All() {
		id, ok := ids[name]
		if !ok {
			id = generateUUID()
		}
		if _, err := stmt.Exec(id, name, qty, pos); err != nil {
			return fmt.Errorf("insert %q: %w", name, err)
		}
		pos++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

// existingIDs maps every stored name to its item_id.
func existingIDs(tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.Query(`SELECT name, item_id FROM items`)
	if err != nil {
		return nil, fmt.Errorf("query item ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]string)
	for rows.Next() {
		var name, id string
		if err := rows.Scan(&name, &id); err != nil {
			return nil, fmt.Errorf("scan item id: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

// generateUUID generates a new UUID v7 for item IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
