package inventory

import (
	"fmt"
	"strings"
)

// SearchStatus classifies a search outcome.
type SearchStatus int

const (
	// SearchEmptyTerm means the term was blank after trimming.
	SearchEmptyTerm SearchStatus = iota
	// SearchNotFound means no item name contains the term.
	SearchNotFound
	// SearchFound means Name and Quantity hold the first match.
	SearchFound
)

// SearchResult is the outcome of Search.
type SearchResult struct {
	Status   SearchStatus
	Name     string
	Quantity int
}

// String renders the status line shown under the search box.
func (r SearchResult) String() string {
	switch r.Status {
	case SearchFound:
		return fmt.Sprintf("Search Result: %s - Quantity: %d", r.Name, r.Quantity)
	case SearchNotFound:
		return "Search Result: Item not found."
	default:
		return "Search Result: Please enter an item name."
	}
}

// Search returns the first item, in insertion order, whose name contains term
// ignoring case. Surrounding whitespace in term is ignored. Only the first
// match is returned even when several names match.
func (s *Store) Search(term string) SearchResult {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return SearchResult{Status: SearchEmptyTerm}
	}

	for name, qty := range s.List() {
		if strings.Contains(strings.ToLower(name), needle) {
			return SearchResult{Status: SearchFound, Name: name, Quantity: qty}
		}
	}
	return SearchResult{Status: SearchNotFound}
}
