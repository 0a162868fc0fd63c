package model

// CartLine is an ephemeral staged purchase entry. It snapshots the item's
// code, name and price at add time and holds a provisional stock
// reservation until checkout, removal or cancellation releases it.
type CartLine struct {
	ItemID      int
	DisplayCode string
	ItemName    string
	Quantity    int
	UnitPrice   int64
}

// Total is the line total in the smallest currency unit.
func (l CartLine) Total() int64 {
	return int64(l.Quantity) * l.UnitPrice
}
