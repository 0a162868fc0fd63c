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
	"github.com/kopbox/kopbox-pos/internal/catalog/dto"
	"github.com/kopbox/kopbox-pos/internal/category"
	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	"github.com/kopbox/kopbox-pos/internal/reindex"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type catalogUseCase struct {
	repo      catalog.Repository
	catRepo   category.Repository
	reindexer reindex.UseCase
	validate  *validator.Validate
	logger    logger.ZapLogger
}

func NewCatalogUseCase(
	repo catalog.Repository,
	catRepo category.Repository,
	reindexer reindex.UseCase,
	log logger.ZapLogger,
) catalog.UseCase {
	return &catalogUseCase{
		repo:      repo,
		catRepo:   catRepo,
		reindexer: reindexer,
		validate:  validator.New(),
		logger:    log,
	}
}

func (uc *catalogUseCase) AddItem(ctx context.Context, input *dto.AddItemInput) (*model.Item, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, classifyValidation(err)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, poserr.ErrEmptyName
	}

	cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("add item: %w", poserr.ErrCategoryNotFound)
	}

	seq, err := uc.repo.NextLocalSequence(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	it := &model.Item{
		CategoryID:    input.CategoryID,
		LocalSequence: seq,
		DisplayCode:   model.DeriveCode(cat.CodePrefix, seq),
		Name:          strings.TrimSpace(input.Name),
		Stock:         input.Stock,
		UnitPrice:     input.UnitPrice,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	uc.logger.Info("item added",
		zap.Int("id", it.ID),
		zap.String("code", it.DisplayCode))
	return it, nil
}

func (uc *catalogUseCase) UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.Item, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, classifyValidation(err)
	}

	it, err := uc.repo.FindByCategoryAndCode(ctx, input.CategoryID, input.DisplayCode)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("item %s: %w", strings.ToUpper(input.DisplayCode), poserr.ErrNotFound)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, poserr.ErrEmptyName
		}
		it.Name = name
	}
	if input.Stock != nil {
		it.Stock = *input.Stock
	}
	if input.UnitPrice != nil {
		it.UnitPrice = *input.UnitPrice
	}

	if err := uc.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (uc *catalogUseCase) RemoveItem(ctx context.Context, categoryID int, displayCode string, confirmed bool) error {
	it, err := uc.repo.FindByCategoryAndCode(ctx, categoryID, displayCode)
	if err != nil {
		return err
	}
	if it == nil {
		return fmt.Errorf("item %s: %w", strings.ToUpper(displayCode), poserr.ErrNotFound)
	}
	if !confirmed {
		return poserr.ErrNotConfirmed
	}

	if err := uc.repo.Delete(ctx, it.ID); err != nil {
		return err
	}
	// Scoped pass: numbering in other categories is untouched.
	if err := uc.reindexer.ReindexCategory(ctx, categoryID); err != nil {
		return err
	}

	uc.logger.Info("item removed",
		zap.Int("id", it.ID),
		zap.String("code", it.DisplayCode))
	return nil
}

func (uc *catalogUseCase) FindByCode(ctx context.Context, displayCode string) (*model.Item, error) {
	return uc.repo.FindByCode(ctx, displayCode)
}

func (uc *catalogUseCase) ListByCategory(ctx context.Context, categoryID int) ([]model.Item, error) {
	return uc.repo.FindByCategory(ctx, categoryID)
}

func classifyValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			return poserr.ErrEmptyName
		case "Stock":
			return poserr.ErrInvalidQuantity
		case "UnitPrice":
			return poserr.ErrInvalidPrice
		}
	}
	return poserr.ErrInvalidInput
}
