package category

import (
	"context"

	"github.com/kopbox/kopbox-pos/internal/category/dto"
	"github.com/kopbox/kopbox-pos/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	// GetCategory reports a miss as ErrNotFound, never as (nil, nil).
	GetCategory(ctx context.Context, id int) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	// UpdateCategory regenerates every owned item's display code when the
	// prefix changes, without renumbering local sequences.
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	// DeleteCategory cascades to owned items and to ledger entries
	// referencing them, then runs a full reindex pass.
	DeleteCategory(ctx context.Context, id int, confirmed bool) error
}
