package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kopbox/kopbox-pos/internal/catalog"
	"github.com/kopbox/kopbox-pos/internal/category"
	"github.com/kopbox/kopbox-pos/internal/category/dto"
	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	"github.com/kopbox/kopbox-pos/internal/reindex"
	"github.com/kopbox/kopbox-pos/internal/sales"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type categoryUseCase struct {
	repo      category.Repository
	itemRepo  catalog.Repository
	salesRepo sales.Repository
	reindexer reindex.UseCase
	validate  *validator.Validate
	logger    logger.ZapLogger
}

func NewCategoryUseCase(
	repo category.Repository,
	itemRepo catalog.Repository,
	salesRepo sales.Repository,
	reindexer reindex.UseCase,
	log logger.ZapLogger,
) category.UseCase {
	return &categoryUseCase{
		repo:      repo,
		itemRepo:  itemRepo,
		salesRepo: salesRepo,
		reindexer: reindexer,
		validate:  validator.New(),
		logger:    log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, classifyValidation(err)
	}
	// required passes a whitespace-only string; the trimmed name must be
	// non-empty too.
	if strings.TrimSpace(input.Name) == "" {
		return nil, poserr.ErrEmptyName
	}
	if err := uc.ensurePrefixFree(ctx, input.CodePrefix, 0); err != nil {
		return nil, err
	}

	cat := &model.Category{
		Name:       strings.TrimSpace(input.Name),
		CodePrefix: strings.ToUpper(input.CodePrefix),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.logger.Info("category created",
		zap.Int("id", cat.ID),
		zap.String("prefix", cat.CodePrefix))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d: %w", id, poserr.ErrNotFound)
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, classifyValidation(err)
	}

	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d: %w", input.ID, poserr.ErrNotFound)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, poserr.ErrEmptyName
		}
		cat.Name = name
	}

	prefixChanged := false
	if input.CodePrefix != nil {
		newPrefix := strings.ToUpper(*input.CodePrefix)
		if newPrefix != cat.CodePrefix {
			if err := uc.ensurePrefixFree(ctx, newPrefix, cat.ID); err != nil {
				return nil, err
			}
			cat.CodePrefix = newPrefix
			prefixChanged = true
		}
	}

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	if prefixChanged {
		// Regenerate every owned item's code from its existing local
		// sequence. This is a direct cascade, not a reindex: numbering is
		// untouched.
		items, err := uc.itemRepo.FindByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		for i := range items {
			items[i].DisplayCode = model.DeriveCode(cat.CodePrefix, items[i].LocalSequence)
			if err := uc.itemRepo.Update(ctx, &items[i]); err != nil {
				return nil, err
			}
		}
		if err := uc.itemRepo.RebuildCodeIndex(ctx); err != nil {
			return nil, err
		}
		uc.logger.Info("category prefix changed, item codes regenerated",
			zap.Int("id", cat.ID),
			zap.String("prefix", cat.CodePrefix),
			zap.Int("items", len(items)))
	}

	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int, confirmed bool) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("category %d: %w", id, poserr.ErrNotFound)
	}
	if !confirmed {
		return poserr.ErrNotConfirmed
	}

	deletedItems, err := uc.itemRepo.DeleteByCategory(ctx, id)
	if err != nil {
		return err
	}
	// Ledger cascade scopes by item id, so a code string that another
	// category happens to share is never over-matched.
	removedSales, err := uc.salesRepo.DeleteByItemIDs(ctx, deletedItems)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.reindexer.ReindexAll(ctx); err != nil {
		return err
	}

	uc.logger.Info("category deleted",
		zap.Int("id", id),
		zap.Int("items_removed", len(deletedItems)),
		zap.Int("sales_removed", removedSales))
	return nil
}

func (uc *categoryUseCase) ensurePrefixFree(ctx context.Context, prefix string, selfID int) error {
	existing, err := uc.repo.FindByPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("prefix %q: %w", strings.ToUpper(prefix), poserr.ErrDuplicatePrefix)
	}
	return nil
}

// classifyValidation maps validator failures onto the shared error kinds.
func classifyValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			return poserr.ErrEmptyName
		case "CodePrefix":
			return poserr.ErrInvalidPrefix
		}
	}
	return poserr.ErrInvalidInput
}
