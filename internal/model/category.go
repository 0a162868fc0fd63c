package model

import "time"

// Category owns a 2-4 letter alphabetic code prefix, unique across all
// categories case-insensitively. Prefixes are stored upper-cased.
type Category struct {
	ID         int
	Name       string
	CodePrefix string
	CreatedAt  time.Time
}
