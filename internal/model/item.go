package model

import (
	"fmt"
	"strings"
	"time"
)

// Item is a catalog entry scoped to exactly one category. LocalSequence is
// unique only within the owning category; DisplayCode is a cached projection
// of (category prefix, local sequence) and must be regenerated whenever
// either changes. It is never settable on its own.
type Item struct {
	ID            int // global id, never reused
	CategoryID    int
	LocalSequence int
	DisplayCode   string
	Name          string
	Stock         int
	UnitPrice     int64 // smallest currency unit
	CreatedAt     time.Time
}

// DeriveCode builds the display code for a prefix and category-local
// sequence: upper-cased prefix followed by the zero-padded sequence.
func DeriveCode(prefix string, localSequence int) string {
	return strings.ToUpper(prefix) + fmt.Sprintf("%03d", localSequence)
}
