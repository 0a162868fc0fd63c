package category

import (
	"context"

	"github.com/kopbox/kopbox-pos/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	// FindByID returns (nil, nil) on a miss.
	FindByID(ctx context.Context, id int) (*model.Category, error)
	// FindByPrefix matches case-insensitively. Returns (nil, nil) on a miss.
	FindByPrefix(ctx context.Context, prefix string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int) error
}
