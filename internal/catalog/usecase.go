package catalog

import (
	"context"

	"github.com/kopbox/kopbox-pos/internal/catalog/dto"
	"github.com/kopbox/kopbox-pos/internal/model"
)

type UseCase interface {
	// AddItem assigns the next local sequence in the category and derives
	// the display code from the current prefix.
	AddItem(ctx context.Context, input *dto.AddItemInput) (*model.Item, error)
	// UpdateItem edits name/stock/price only; category and code are
	// immutable outside cascades and reindexing.
	UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.Item, error)
	// RemoveItem deletes the item and reindexes its category only.
	RemoveItem(ctx context.Context, categoryID int, displayCode string, confirmed bool) error
	// FindByCode is the global case-insensitive lookup used by the cart.
	// Returns (nil, nil) on a miss.
	FindByCode(ctx context.Context, displayCode string) (*model.Item, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Item, error)
}
