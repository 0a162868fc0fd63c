package dto

import "time"

// SaleFilters selects ledger entries by commit time. All fields nil means
// unconditional. Day, the Start/End pair and Month are alternatives; Day
// matches a calendar date, Start/End an inclusive date range, Month a
// (month, year) pair.
type SaleFilters struct {
	Day   *time.Time
	Start *time.Time
	End   *time.Time
	Month *time.Time
}

type RecordSaleInput struct {
	ReceiptID   string
	ItemID      int
	DisplayCode string
	ItemName    string
	Quantity    int
	UnitPrice   int64
	CommittedAt time.Time
}
