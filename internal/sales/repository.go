package sales

import (
	"context"

	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/sales/dto"
)

type Repository interface {
	// Create appends the line, assigning the next ledger id
	// (max existing + 1, or 1 if the ledger is empty).
	Create(ctx context.Context, line *model.SaleLine) error
	// FindAll returns matching lines ordered by ascending id.
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.SaleLine, error)
	// DeleteByItemIDs removes lines referencing the given item ids and
	// returns the number removed. Only the category-delete cascade uses it.
	DeleteByItemIDs(ctx context.Context, itemIDs []int) (int, error)
}
