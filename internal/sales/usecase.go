package sales

import (
	"context"
	"time"

	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/sales/dto"
)

type UseCase interface {
	// Record appends one immutable ledger entry.
	Record(ctx context.Context, input *dto.RecordSaleInput) (*model.SaleLine, error)
	QueryAll(ctx context.Context) ([]model.SaleLine, error)
	QueryDay(ctx context.Context, day time.Time) ([]model.SaleLine, error)
	QueryRange(ctx context.Context, start, end time.Time) ([]model.SaleLine, error)
	QueryMonth(ctx context.Context, month time.Time) ([]model.SaleLine, error)
}
