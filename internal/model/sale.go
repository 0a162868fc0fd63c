package model

import "time"

// SaleLine is a committed ledger entry, converted from a cart line at
// checkout. It is append-only and never mutated after commit; the only
// removal path is the cascade from a category delete, which matches on
// ItemID rather than on the denormalized display code.
type SaleLine struct {
	ID          int
	ReceiptID   string // shared by all lines of one checkout
	ItemID      int
	DisplayCode string
	ItemName    string
	Quantity    int
	UnitPrice   int64
	LineTotal   int64
	CommittedAt time.Time
}
