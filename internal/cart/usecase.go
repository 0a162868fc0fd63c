// Package cart stages a multi-line purchase against the catalog. Stock is
// reserved optimistically when a line is added, so availability feedback is
// honest while the operator builds the cart; cancellation must therefore be
// a total inverse of every prior add.
package cart

import (
	"context"

	"github.com/kopbox/kopbox-pos/internal/cart/dto"
	"github.com/kopbox/kopbox-pos/internal/model"
)

// State of the single active cart.
type State int

const (
	StateEmpty State = iota
	StateActive
)

type UseCase interface {
	// AddLine reserves stock immediately and snapshots the item's code,
	// name and price into a new line.
	AddLine(ctx context.Context, displayCode string, quantity int) (*model.CartLine, error)
	// RemoveLine returns the line's reserved quantity to stock. Index is
	// zero-based.
	RemoveLine(ctx context.Context, index int) error
	// Cancel releases every remaining reservation and empties the cart.
	Cancel(ctx context.Context) error
	// Checkout converts the cart to ledger entries under one receipt id.
	// Stock is not touched again; it was already decremented at add time.
	Checkout(ctx context.Context) (*dto.Receipt, error)
	Lines() []model.CartLine
	Total() int64
	State() State
}
