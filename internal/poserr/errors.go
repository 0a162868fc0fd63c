// Package poserr defines the error kinds shared across the POS core.
// Every operation reports failures through one of these sentinels (usually
// wrapped with context via fmt.Errorf and %w) so callers can classify with
// errors.Is at the boundary instead of matching message strings.
package poserr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers category and item lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrCategoryNotFound is raised when an item operation references a
	// category id that does not exist.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidPrefix   = errors.New("code prefix must be 2-4 letters")
	ErrDuplicatePrefix = errors.New("code prefix already in use")

	// ErrInvalidQuantity covers non-positive quantities and, through
	// ErrInsufficientStock, requests exceeding available stock.
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("price must not be negative")
	// ErrInsufficientStock wraps ErrInvalidQuantity so callers checking
	// either kind succeed.
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrInvalidQuantity)

	ErrEmptyCart       = errors.New("cart is empty")
	ErrIndexOutOfRange = errors.New("cart line index out of range")
	ErrNotConfirmed    = errors.New("destructive action not confirmed")
	ErrInvalidInput    = errors.New("invalid input")
)
