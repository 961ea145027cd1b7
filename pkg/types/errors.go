package types

import "errors"

// Persistence errors.
var (
	// ErrMalformedData marks persisted data that is not a JSON object of
	// non-negative integers (or the SQLite equivalent). Fatal at startup.
	ErrMalformedData = errors.New("malformed persisted data")
	ErrStoreClosed   = errors.New("store is closed")
)

// Item errors.
var (
	ErrInvalidName     = errors.New("item name must not be empty")
	ErrInvalidQuantity = errors.New("quantity must be a non-negative whole number")
	ErrUnknownItem     = errors.New("item does not exist")
)
