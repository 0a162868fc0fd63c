package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/sales"
	"github.com/kopbox/kopbox-pos/internal/sales/dto"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type salesUseCase struct {
	repo   sales.Repository
	logger logger.ZapLogger
}

func NewSalesUseCase(repo sales.Repository, log logger.ZapLogger) sales.UseCase {
	return &salesUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *salesUseCase) Record(ctx context.Context, input *dto.RecordSaleInput) (*model.SaleLine, error) {
	line := &model.SaleLine{
		ReceiptID:   input.ReceiptID,
		ItemID:      input.ItemID,
		DisplayCode: input.DisplayCode,
		ItemName:    input.ItemName,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		LineTotal:   int64(input.Quantity) * input.UnitPrice,
		CommittedAt: input.CommittedAt,
	}
	if err := uc.repo.Create(ctx, line); err != nil {
		return nil, err
	}
	uc.logger.Debug("recorded sale line",
		zap.Int("id", line.ID),
		zap.String("code", line.DisplayCode),
		zap.Int64("total", line.LineTotal))
	return line, nil
}

func (uc *salesUseCase) QueryAll(ctx context.Context) ([]model.SaleLine, error) {
	return uc.repo.FindAll(ctx, nil)
}

func (uc *salesUseCase) QueryDay(ctx context.Context, day time.Time) ([]model.SaleLine, error) {
	return uc.repo.FindAll(ctx, &dto.SaleFilters{Day: &day})
}

func (uc *salesUseCase) QueryRange(ctx context.Context, start, end time.Time) ([]model.SaleLine, error) {
	return uc.repo.FindAll(ctx, &dto.SaleFilters{Start: &start, End: &end})
}

func (uc *salesUseCase) QueryMonth(ctx context.Context, month time.Time) ([]model.SaleLine, error) {
	return uc.repo.FindAll(ctx, &dto.SaleFilters{Month: &month})
}
