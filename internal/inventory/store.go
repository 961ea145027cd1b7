// Package inventory implements the item store: the in-memory Inventory, the
// operations that mutate and query it, and the write-through to a Persister
// after every mutation.
//
// A Store is created once at startup and handed to whichever component needs
// it. Every operation runs to completion, including the full write, before it
// returns. If the write fails the in-memory Inventory is left as it was, so
// it always mirrors the last successful write.
package inventory

import (
	"fmt"
	"iter"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/internal/jsonfile"
	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Store owns an Inventory and its persistence.
type Store struct {
	mu        sync.Mutex
	inv       *types.Inventory
	persister types.Persister
	logger    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New loads the Inventory from p. A load failure other than a missing store
// is returned unchanged; callers treat it as fatal.
func New(p types.Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	inv, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	s.inv = inv
	s.logger.Debug("inventory loaded", zap.Int("items", inv.Len()))
	return s, nil
}

// Open selects the backend named by cfg and loads the Inventory from it.
func Open(cfg types.Config, opts ...Option) (*Store, error) {
	p, err := OpenPersister(cfg)
	if err != nil {
		return nil, err
	}
	s, err := New(p, opts...)
	if err != nil {
		p.Close()
		return nil, err
	}
	return s, nil
}

// OpenPersister returns the Persister for cfg.Backend.
func OpenPersister(cfg types.Config) (types.Persister, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.Open(cfg)
	default:
		return jsonfile.Open(cfg)
	}
}

// Close releases the Persister.
func (s *Store) Close() error {
	return s.persister.Close()
}

// Path returns the file the Inventory is persisted to.
func (s *Store) Path() string {
	return s.persister.Path()
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Len()
}

// Get returns the quantity of name.
func (s *Store) Get(name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Get(name)
}

// Snapshot returns a copy of the current Inventory.
func (s *Store) Snapshot() *types.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Clone()
}

// List returns the (name, quantity) pairs in insertion order. Each pass over
// the sequence reads the Inventory as it is when the pass starts, so ranging
// twice with no mutation in between yields the same pairs.
func (s *Store) List() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		s.mu.Lock()
		current := s.inv
		s.mu.Unlock()

		for name, qty := range current.All() {
			if !yield(name, qty) {
				return
			}
		}
	}
}

// commit saves next and, only if that succeeds, makes it the current
// Inventory. The caller must hold s.mu.
func (s *Store) commit(next *types.Inventory) error {
	if err := s.persister.Save(next); err != nil {
		s.logger.Error("save inventory failed", zap.Error(err))
		return fmt.Errorf("save inventory: %w", err)
	}
	s.inv = next
	return nil
}
