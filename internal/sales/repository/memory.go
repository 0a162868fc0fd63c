package repository

import (
	"context"
	"sort"
	"time"

	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/sales/dto"
	"github.com/kopbox/kopbox-pos/internal/store"
)

type MemRepository struct {
	DB *store.Store
}

func NewMemRepository(db *store.Store) *MemRepository {
	return &MemRepository{DB: db}
}

func (r *MemRepository) Create(_ context.Context, line *model.SaleLine) error {
	maxID := 0
	for _, s := range r.DB.Sales {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	line.ID = maxID + 1
	stored := *line
	r.DB.Sales = append(r.DB.Sales, &stored)
	return nil
}

func (r *MemRepository) FindAll(_ context.Context, f *dto.SaleFilters) ([]model.SaleLine, error) {
	var out []model.SaleLine
	for _, s := range r.DB.Sales {
		if f == nil || matches(f, s.CommittedAt) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) DeleteByItemIDs(_ context.Context, itemIDs []int) (int, error) {
	drop := make(map[int]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = struct{}{}
	}
	removed := 0
	kept := r.DB.Sales[:0]
	for _, s := range r.DB.Sales {
		if _, ok := drop[s.ItemID]; ok {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	r.DB.Sales = kept
	return removed, nil
}

func matches(f *dto.SaleFilters, at time.Time) bool {
	switch {
	case f.Day != nil:
		return sameDate(at, *f.Day)
	case f.Start != nil && f.End != nil:
		d := dateOf(at)
		return !d.Before(dateOf(*f.Start)) && !d.After(dateOf(*f.End))
	case f.Month != nil:
		return at.Year() == f.Month.Year() && at.Month() == f.Month.Month()
	}
	return true
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
