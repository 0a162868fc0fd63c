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

func (r *MemRepository) Create(_ context.Context, c *model.Category) error {
	c.ID = r.DB.NextCategoryID()
	stored := *c
	r.DB.Categories = append(r.DB.Categories, &stored)
	return nil
}

func (r *MemRepository) FindByID(_ context.Context, id int) (*model.Category, error) {
	for _, c := range r.DB.Categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemRepository) FindByPrefix(_ context.Context, prefix string) (*model.Category, error) {
	for _, c := range r.DB.Categories {
		if strings.EqualFold(c.CodePrefix, prefix) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemRepository) FindAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.DB.Categories))
	for _, c := range r.DB.Categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) Update(_ context.Context, c *model.Category) error {
	for _, existing := range r.DB.Categories {
		if existing.ID == c.ID {
			*existing = *c
			return nil
		}
	}
	return fmt.Errorf("update category %d: %w", c.ID, poserr.ErrNotFound)
}

func (r *MemRepository) Delete(_ context.Context, id int) error {
	for i, c := range r.DB.Categories {
		if c.ID == id {
			r.DB.Categories = append(r.DB.Categories[:i], r.DB.Categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete category %d: %w", id, poserr.ErrNotFound)
}
