// Package reindex restores dense 1..N category-local numbering after
// deletions or bulk edits and regenerates the derived display codes.
package reindex

import "context"

type UseCase interface {
	// ReindexCategory renumbers one category's items to 1..N, ordered by
	// (current local sequence, global id) ascending, and regenerates their
	// display codes. Idempotent: a second run with no intervening mutation
	// yields identical assignments.
	ReindexCategory(ctx context.Context, categoryID int) error
	// ReindexAll applies ReindexCategory to every category in ascending
	// category-id order. Global item ids are never touched.
	ReindexAll(ctx context.Context) error
}
