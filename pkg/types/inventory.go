package types

import (
	"iter"
	"slices"
)

// Inventory maps item names to quantities and remembers the order in which
// names were first inserted. Updating an existing name keeps its position;
// deleting a name forgets it, so a later insert appends it at the end.
//
// The zero value is not usable; call NewInventory.
type Inventory struct {
	names      []string
	quantities map[string]int
}

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{quantities: make(map[string]int)}
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.names)
}

// Get returns the quantity stored for name.
func (inv *Inventory) Get(name string) (int, bool) {
	q, ok := inv.quantities[name]
	return q, ok
}

// Has reports whether name is present.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.quantities[name]
	return ok
}

// Set stores qty under name, appending name if it is new.
func (inv *Inventory) Set(name string, qty int) error {
	if name == "" {
		return ErrInvalidName
	}
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if _, ok := inv.quantities[name]; !ok {
		inv.names = append(inv.names, name)
	}
	inv.quantities[name] = qty
	return nil
}

// Delete removes name and reports whether it was present.
func (inv *Inventory) Delete(name string) bool {
	if _, ok := inv.quantities[name]; !ok {
		return false
	}
	delete(inv.quantities, name)
	if i := slices.Index(inv.names, name); i >= 0 {
		inv.names = slices.Delete(inv.names, i, i+1)
	}
	return true
}

// Names returns a copy of the item names in insertion order.
func (inv *Inventory) Names() []string {
	return slices.Clone(inv.names)
}

// All returns a sequence of (name, quantity) pairs in insertion order. The
// sequence may be ranged over any number of times; each pass reflects the
// Inventory as it is when the pass starts.
func (inv *Inventory) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		names := slices.Clone(inv.names)
		for _, name := range names {
			if !yield(name, inv.quantities[name]) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	out := &Inventory{
		names:      slices.Clone(inv.names),
		quantities: make(map[string]int, len(inv.quantities)),
	}
	for k, v := range inv.quantities {
		out.quantities[k] = v
	}
	return out
}

// Equal reports whether both inventories hold the same names with the same
// quantities. Order is not compared.
func (inv *Inventory) Equal(other *Inventory) bool {
	if other == nil || inv.Len() != other.Len() {
		return false
	}
	for name, q := range inv.quantities {
		oq, ok := other.quantities[name]
		if !ok || oq != q {
			return false
		}
	}
	return true
}
