package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	"github.com/kopbox/kopbox-pos/internal/store"
)

type MemRepository struct {
	DB *store.Store
}

func NewMemRepository(db *store.Store) *MemRepository {
	return &MemRepository{DB: db}
}

func (r *MemRepository) Create(_ context.Context, it *model.Item) error {
	it.ID = r.DB.NextItemID()
	stored := *it
	r.DB.Items = append(r.DB.Items, &stored)
	r.DB.IndexItem(&stored)
	return nil
}

func (r *MemRepository) FindByID(_ context.Context, id int) (*model.Item, error) {
	for _, it := range r.DB.Items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemRepository) FindByCode(_ context.Context, code string) (*model.Item, error) {
	if it := r.DB.ItemByCode(code); it != nil {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *MemRepository) FindByCategoryAndCode(_ context.Context, categoryID int, code string) (*model.Item, error) {
	for _, it := range r.DB.Items {
		if it.CategoryID == categoryID && strings.EqualFold(it.DisplayCode, code) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemRepository) FindByCategory(_ context.Context, categoryID int) ([]model.Item, error) {
	var out []model.Item
	for _, it := range r.DB.Items {
		if it.CategoryID == categoryID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LocalSequence != out[j].LocalSequence {
			return out[i].LocalSequence < out[j].LocalSequence
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemRepository) NextLocalSequence(_ context.Context, categoryID int) (int, error) {
	maxSeq := 0
	for _, it := range r.DB.Items {
		if it.CategoryID == categoryID && it.LocalSequence > maxSeq {
			maxSeq = it.LocalSequence
		}
	}
	return maxSeq + 1, nil
}

func (r *MemRepository) Update(_ context.Context, it *model.Item) error {
	for _, existing := range r.DB.Items {
		if existing.ID == it.ID {
			*existing = *it
			return nil
		}
	}
	return fmt.Errorf("update item %d: %w", it.ID, poserr.ErrNotFound)
}

func (r *MemRepository) Delete(_ context.Context, id int) error {
	for i, it := range r.DB.Items {
		if it.ID == id {
			r.DB.Items = append(r.DB.Items[:i], r.DB.Items[i+1:]...)
			r.DB.RebuildCodeIndex()
			return nil
		}
	}
	return fmt.Errorf("delete item %d: %w", id, poserr.ErrNotFound)
}

func (r *MemRepository) DeleteByCategory(_ context.Context, categoryID int) ([]int, error) {
	var deleted []int
	kept := r.DB.Items[:0]
	for _, it := range r.DB.Items {
		if it.CategoryID == categoryID {
			deleted = append(deleted, it.ID)
			continue
		}
		kept = append(kept, it)
	}
	r.DB.Items = kept
	if len(deleted) > 0 {
		r.DB.RebuildCodeIndex()
	}
	return deleted, nil
}

func (r *MemRepository) RebuildCodeIndex(_ context.Context) error {
	r.DB.RebuildCodeIndex()
	return nil
}
