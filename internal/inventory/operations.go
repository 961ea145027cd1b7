package inventory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// ValidationError reports why UpdateQuantity rejected its input.
type ValidationError struct {
	Op   string
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AddResult describes what AddOrIncrement did.
type AddResult struct {
	// Applied is false when the input was rejected and nothing changed.
	Applied bool
	// Created is true when the name was not present before.
	Created bool
	// Quantity is the stored quantity after the call.
	Quantity int
}

// ParseQuantity accepts text made only of ASCII digits, at least one of
// them, that fits in an int.
func ParseQuantity(text string) (int, error) {
	if text == "" {
		return 0, types.ErrInvalidQuantity
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, types.ErrInvalidQuantity
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, types.ErrInvalidQuantity
	}
	return n, nil
}

// AddOrIncrement adds quantityText to name, creating the item if needed.
// An empty or non-UTF-8 name, or a non-digit quantity, is a silent no-op: the result has
// Applied false and the error is nil. A non-nil error means the write failed.
func (s *Store) AddOrIncrement(name, quantityText string) (AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validName(name) {
		s.logger.Debug("add ignored", zap.Error(types.ErrInvalidName))
		return AddResult{}, nil
	}
	qty, err := ParseQuantity(quantityText)
	if err != nil {
		s.logger.Debug("add ignored", zap.String("item", name), zap.String("quantity", quantityText), zap.Error(err))
		return AddResult{}, nil
	}

	current, exists := s.inv.Get(name)
	if exists && current > math.MaxInt-qty {
		s.logger.Debug("add ignored", zap.String("item", name), zap.String("reason", "quantity overflow"))
		return AddResult{}, nil
	}

	next := s.inv.Clone()
	total := current + qty
	if err := next.Set(name, total); err != nil {
		return AddResult{}, err
	}
	if err := s.commit(next); err != nil {
		return AddResult{}, err
	}

	s.logger.Debug("item added", zap.String("item", name), zap.Int("quantity", total), zap.Bool("created", !exists))
	return AddResult{Applied: true, Created: !exists, Quantity: total}, nil
}

// Remove deletes name. It reports whether the item existed; removing a
// missing item is a no-op and not an error.
func (s *Store) Remove(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inv.Has(name) {
		s.logger.Debug("remove ignored", zap.String("item", name), zap.Error(types.ErrUnknownItem))
		return false, nil
	}

	next := s.inv.Clone()
	next.Delete(name)
	if err := s.commit(next); err != nil {
		return false, err
	}

	s.logger.Debug("item removed", zap.String("item", name))
	return true, nil
}

// UpdateQuantity replaces the quantity of an existing item. Rejected input
// returns a *ValidationError wrapping ErrInvalidName, ErrInvalidQuantity, or
// ErrUnknownItem; it is also logged at warn level.
func (s *Store) UpdateQuantity(name, newQuantityText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty, err := s.validateUpdate(name, newQuantityText)
	if err != nil {
		verr := &ValidationError{Op: "update", Name: name, Err: err}
		s.logger.Warn("update rejected", zap.String("item", name), zap.String("quantity", newQuantityText), zap.Error(err))
		return verr
	}

	next := s.inv.Clone()
	if err := next.Set(name, qty); err != nil {
		return err
	}
	if err := s.commit(next); err != nil {
		return err
	}

	s.logger.Debug("item updated", zap.String("item", name), zap.Int("quantity", qty))
	return nil
}

func (s *Store) validateUpdate(name, text string) (int, error) {
	if !validName(name) {
		return 0, types.ErrInvalidName
	}
	qty, err := ParseQuantity(text)
	if err != nil {
		return 0, err
	}
	if !s.inv.Has(name) {
		return 0, types.ErrUnknownItem
	}
	return qty, nil
}

// validName reports whether name can be stored. Names must be valid UTF-8 so
// that the persisted file holds exactly the bytes kept in memory.
func validName(name string) bool {
	return name != "" && utf8.ValidString(name)
}

// IsValidationError reports whether err came from rejected input rather than
// a failed write.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
