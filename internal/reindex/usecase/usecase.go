package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kopbox/kopbox-pos/internal/catalog"
	"github.com/kopbox/kopbox-pos/internal/category"
	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	"github.com/kopbox/kopbox-pos/internal/reindex"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type reindexUseCase struct {
	catRepo  category.Repository
	itemRepo catalog.Repository
	logger   logger.ZapLogger
}

func NewReindexUseCase(catRepo category.Repository, itemRepo catalog.Repository, log logger.ZapLogger) reindex.UseCase {
	return &reindexUseCase{
		catRepo:  catRepo,
		itemRepo: itemRepo,
		logger:   log,
	}
}

func (uc *reindexUseCase) ReindexCategory(ctx context.Context, categoryID int) error {
	cat, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("reindex category %d: %w", categoryID, poserr.ErrCategoryNotFound)
	}
	if err := uc.renumber(ctx, cat); err != nil {
		return err
	}
	return uc.itemRepo.RebuildCodeIndex(ctx)
}

func (uc *reindexUseCase) ReindexAll(ctx context.Context) error {
	cats, err := uc.catRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range cats {
		if err := uc.renumber(ctx, &cats[i]); err != nil {
			return err
		}
	}
	return uc.itemRepo.RebuildCodeIndex(ctx)
}

// renumber reassigns local sequences 1..N. The repository already orders
// items by (local sequence, global id), which is the stable tie-break that
// makes repeated runs idempotent.
func (uc *reindexUseCase) renumber(ctx context.Context, cat *model.Category) error {
	items, err := uc.itemRepo.FindByCategory(ctx, cat.ID)
	if err != nil {
		return err
	}
	for i := range items {
		seq := i + 1
		code := model.DeriveCode(cat.CodePrefix, seq)
		if items[i].LocalSequence == seq && items[i].DisplayCode == code {
			continue
		}
		items[i].LocalSequence = seq
		items[i].DisplayCode = code
		if err := uc.itemRepo.Update(ctx, &items[i]); err != nil {
			return err
		}
	}
	uc.logger.Debug("reindexed category",
		zap.Int("category_id", cat.ID),
		zap.Int("items", len(items)))
	return nil
}
