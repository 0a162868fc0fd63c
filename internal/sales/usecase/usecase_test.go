package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/sales"
	"github.com/kopbox/kopbox-pos/internal/sales/dto"
	"github.com/kopbox/kopbox-pos/internal/sales/repository"
	"github.com/kopbox/kopbox-pos/internal/store"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type salesEnv struct {
	db   *store.Store
	repo sales.Repository
	uc   sales.UseCase
}

func newSalesEnv(t *testing.T) *salesEnv {
	t.Helper()
	db := store.New()
	repo := repository.NewMemRepository(db)
	return &salesEnv{
		db:   db,
		repo: repo,
		uc:   NewSalesUseCase(repo, logger.NewNop()),
	}
}

func (e *salesEnv) record(t *testing.T, code string, qty int, price int64, at time.Time) *model.SaleLine {
	t.Helper()
	line, err := e.uc.Record(context.Background(), &dto.RecordSaleInput{
		ReceiptID:   "r-1",
		ItemID:      1,
		DisplayCode: code,
		ItemName:    code,
		Quantity:    qty,
		UnitPrice:   price,
		CommittedAt: at,
	})
	require.NoError(t, err)
	return line
}

func TestRecordComputesLineTotal(t *testing.T) {
	env := newSalesEnv(t)
	line := env.record(t, "MA001", 3, 20000, time.Now())

	assert.Equal(t, 1, line.ID)
	assert.Equal(t, int64(60000), line.LineTotal)
}

func TestRecordAssignsMaxPlusOneIDs(t *testing.T) {
	env := newSalesEnv(t)
	now := time.Now()
	env.record(t, "MA001", 1, 1000, now)
	env.record(t, "MA002", 1, 1000, now)

	// Removing the tail entry must not free its id for reuse... unless the
	// whole ledger empties; ids only need to stay unique among live rows.
	_, err := env.repo.DeleteByItemIDs(context.Background(), []int{1})
	require.NoError(t, err)

	third := env.record(t, "MI001", 1, 1000, now)
	assert.Equal(t, 1, third.ID, "empty ledger restarts at 1")
}

func TestQueryDay(t *testing.T) {
	env := newSalesEnv(t)
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.Local)
	env.record(t, "MA001", 1, 1000, day)
	env.record(t, "MA002", 1, 1000, day.AddDate(0, 0, -1))
	env.record(t, "MA003", 1, 1000, day.Add(5*time.Hour))

	// Query at midnight; matching is by calendar date, not instant.
	got, err := env.uc.QueryDay(context.Background(), time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "MA001", got[0].DisplayCode)
	assert.Equal(t, "MA003", got[1].DisplayCode)
}

func TestQueryRangeInclusive(t *testing.T) {
	env := newSalesEnv(t)
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local) // Monday
	end := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)   // Sunday
	env.record(t, "before", 1, 1000, start.AddDate(0, 0, -1))
	env.record(t, "first", 1, 1000, start.Add(9*time.Hour))
	env.record(t, "last", 1, 1000, end.Add(23*time.Hour))
	env.record(t, "after", 1, 1000, end.AddDate(0, 0, 1))

	got, err := env.uc.QueryRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].DisplayCode)
	assert.Equal(t, "last", got[1].DisplayCode)
}

func TestQueryMonth(t *testing.T) {
	env := newSalesEnv(t)
	env.record(t, "aug", 1, 1000, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local))
	env.record(t, "aug2", 1, 1000, time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local))
	env.record(t, "sep", 1, 1000, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local))
	env.record(t, "aug-next-year", 1, 1000, time.Date(2027, 8, 15, 0, 0, 0, 0, time.Local))

	got, err := env.uc.QueryMonth(context.Background(), time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "aug", got[0].DisplayCode)
	assert.Equal(t, "aug2", got[1].DisplayCode)
}

func TestQueryAllOrderedByID(t *testing.T) {
	env := newSalesEnv(t)
	now := time.Now()
	for i := 0; i < 5; i++ {
		env.record(t, "MA001", 1, 1000, now)
	}

	got, err := env.uc.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestDeleteByItemIDs(t *testing.T) {
	env := newSalesEnv(t)
	now := time.Now()
	env.db.Sales = append(env.db.Sales,
		&model.SaleLine{ID: 1, ItemID: 7, CommittedAt: now},
		&model.SaleLine{ID: 2, ItemID: 8, CommittedAt: now},
		&model.SaleLine{ID: 3, ItemID: 7, CommittedAt: now},
	)

	removed, err := env.repo.DeleteByItemIDs(context.Background(), []int{7})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	got, err := env.uc.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].ItemID)
}
