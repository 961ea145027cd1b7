package types

// Persister loads and saves a whole Inventory. Every Save fully replaces
// what the previous Save wrote; there is no partial or incremental write.
type Persister interface {
	// Load reads the persisted Inventory. A missing store yields an empty
	// Inventory and a nil error. Any other failure is returned to the caller.
	Load() (*Inventory, error)

	// Save writes inv, replacing the previous contents.
	Save(inv *Inventory) error

	// Path names the file the backend persists to.
	Path() string

	// Close releases backend resources. Idempotent.
	Close() error
}
