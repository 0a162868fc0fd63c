package catalog

import (
	"context"

	"github.com/kopbox/kopbox-pos/internal/model"
)

type Repository interface {
	// Create assigns the global id and registers the display code.
	Create(ctx context.Context, item *model.Item) error
	// FindByID resolves a global item id. Returns (nil, nil) on a miss.
	FindByID(ctx context.Context, id int) (*model.Item, error)
	// FindByCode resolves a display code case-insensitively across all
	// categories. Returns (nil, nil) on a miss.
	FindByCode(ctx context.Context, code string) (*model.Item, error)
	// FindByCategoryAndCode is the addressing scheme exposed to the UI:
	// case-insensitive code within one category. Returns (nil, nil) on a miss.
	FindByCategoryAndCode(ctx context.Context, categoryID int, code string) (*model.Item, error)
	// FindByCategory returns the category's items ordered by local sequence.
	FindByCategory(ctx context.Context, categoryID int) ([]model.Item, error)
	NextLocalSequence(ctx context.Context, categoryID int) (int, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id int) error
	// DeleteByCategory removes all items of a category and returns their
	// global ids so the sales cascade can scope by id.
	DeleteByCategory(ctx context.Context, categoryID int) ([]int, error)
	// RebuildCodeIndex refreshes the code lookup after bulk code changes.
	RebuildCodeIndex(ctx context.Context) error
}
