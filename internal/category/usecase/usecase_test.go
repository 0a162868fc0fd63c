package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopbox/kopbox-pos/internal/catalog"
	catalogdto "github.com/kopbox/kopbox-pos/internal/catalog/dto"
	catalogrepo "github.com/kopbox/kopbox-pos/internal/catalog/repository"
	cataloguc "github.com/kopbox/kopbox-pos/internal/catalog/usecase"
	"github.com/kopbox/kopbox-pos/internal/category"
	"github.com/kopbox/kopbox-pos/internal/category/dto"
	categoryrepo "github.com/kopbox/kopbox-pos/internal/category/repository"
	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	reindexuc "github.com/kopbox/kopbox-pos/internal/reindex/usecase"
	salesrepo "github.com/kopbox/kopbox-pos/internal/sales/repository"
	"github.com/kopbox/kopbox-pos/internal/store"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type categoryEnv struct {
	db    *store.Store
	uc    category.UseCase
	items catalog.UseCase
}

func newCategoryEnv(t *testing.T) *categoryEnv {
	t.Helper()
	db := store.New()
	catRepo := categoryrepo.NewMemRepository(db)
	itemRepo := catalogrepo.NewMemRepository(db)
	salesRepo := salesrepo.NewMemRepository(db)
	reindexer := reindexuc.NewReindexUseCase(catRepo, itemRepo, logger.NewNop())
	return &categoryEnv{
		db:    db,
		uc:    NewCategoryUseCase(catRepo, itemRepo, salesRepo, reindexer, logger.NewNop()),
		items: cataloguc.NewCatalogUseCase(itemRepo, catRepo, reindexer, logger.NewNop()),
	}
}

func (e *categoryEnv) create(t *testing.T, name, prefix string) *model.Category {
	t.Helper()
	cat, err := e.uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{
		Name:       name,
		CodePrefix: prefix,
	})
	require.NoError(t, err)
	return cat
}

func (e *categoryEnv) addItem(t *testing.T, categoryID int, name string) *model.Item {
	t.Helper()
	it, err := e.items.AddItem(context.Background(), &catalogdto.AddItemInput{
		CategoryID: categoryID,
		Name:       name,
		Stock:      10,
		UnitPrice:  1000,
	})
	require.NoError(t, err)
	return it
}

func TestCreateCategory(t *testing.T) {
	env := newCategoryEnv(t)
	cat := env.create(t, "Makanan", "ma")

	assert.Equal(t, 1, cat.ID)
	assert.Equal(t, "MA", cat.CodePrefix, "prefix is stored upper-cased")
	assert.False(t, cat.CreatedAt.IsZero())
}

func TestCreateCategoryValidation(t *testing.T) {
	env := newCategoryEnv(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		prefix string
		want   error
	}{
		{"", "MA", poserr.ErrEmptyName},
		{"   ", "MA", poserr.ErrEmptyName},
		{"Makanan", "M", poserr.ErrInvalidPrefix},
		{"Makanan", "MAKAN", poserr.ErrInvalidPrefix},
		{"Makanan", "M1", poserr.ErrInvalidPrefix},
		{"Makanan", "", poserr.ErrInvalidPrefix},
	}
	for _, tc := range cases {
		_, err := env.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: tc.name, CodePrefix: tc.prefix})
		assert.ErrorIs(t, err, tc.want, "name=%q prefix=%q", tc.name, tc.prefix)
	}

	cats, err := env.uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats, "rejected inputs must store nothing")
}

func TestCreateCategoryDuplicatePrefix(t *testing.T) {
	env := newCategoryEnv(t)
	env.create(t, "Makanan", "MA")

	_, err := env.uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{
		Name:       "Masakan",
		CodePrefix: "ma", // case-insensitive collision
	})
	assert.ErrorIs(t, err, poserr.ErrDuplicatePrefix)
}

func TestCategoryIDsNeverReused(t *testing.T) {
	env := newCategoryEnv(t)
	first := env.create(t, "Makanan", "MA")
	ctx := context.Background()

	require.NoError(t, env.uc.DeleteCategory(ctx, first.ID, true))
	second := env.create(t, "Minuman", "MI")

	assert.Greater(t, second.ID, first.ID)
}

func TestGetCategory(t *testing.T) {
	env := newCategoryEnv(t)
	created := env.create(t, "Makanan", "MA")
	ctx := context.Background()

	got, err := env.uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Makanan", got.Name)

	_, err = env.uc.GetCategory(ctx, 42)
	assert.ErrorIs(t, err, poserr.ErrNotFound)
}

func TestListCategoriesOrdered(t *testing.T) {
	env := newCategoryEnv(t)
	env.create(t, "Makanan", "MA")
	env.create(t, "Minuman", "MI")
	env.create(t, "Snack", "SN")

	cats, err := env.uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)
	for i := 1; i < len(cats); i++ {
		assert.Less(t, cats[i-1].ID, cats[i].ID)
	}
}

func TestUpdateCategoryName(t *testing.T) {
	env := newCategoryEnv(t)
	cat := env.create(t, "Makanan", "MA")

	name := "Makanan Berat"
	updated, err := env.uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{
		ID:   cat.ID,
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Makanan Berat", updated.Name)
	assert.Equal(t, "MA", updated.CodePrefix)
}

func TestUpdateCategoryPrefixRegeneratesItemCodes(t *testing.T) {
	env := newCategoryEnv(t)
	cat := env.create(t, "Makanan", "MA")
	env.addItem(t, cat.ID, "Nasi Goreng")
	env.addItem(t, cat.ID, "Mie Goreng")
	ctx := context.Background()

	prefix := "MK"
	_, err := env.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: cat.ID, CodePrefix: &prefix})
	require.NoError(t, err)

	items, err := env.items.ListByCategory(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "MK001", items[0].DisplayCode)
	assert.Equal(t, "MK002", items[1].DisplayCode)
	assert.Equal(t, 1, items[0].LocalSequence, "prefix edit never renumbers")
	assert.Equal(t, 2, items[1].LocalSequence)

	// The code index follows the cascade.
	it, err := env.items.FindByCode(ctx, "mk001")
	require.NoError(t, err)
	require.NotNil(t, it)
	old, err := env.items.FindByCode(ctx, "MA001")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestUpdateCategoryPrefixDuplicate(t *testing.T) {
	env := newCategoryEnv(t)
	env.create(t, "Makanan", "MA")
	drink := env.create(t, "Minuman", "MI")

	prefix := "MA"
	_, err := env.uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: drink.ID, CodePrefix: &prefix})
	assert.ErrorIs(t, err, poserr.ErrDuplicatePrefix)
}

func TestUpdateCategorySamePrefixNoCascade(t *testing.T) {
	env := newCategoryEnv(t)
	cat := env.create(t, "Makanan", "MA")
	env.addItem(t, cat.ID, "Nasi Goreng")

	prefix := "ma" // same prefix, different case
	_, err := env.uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: cat.ID, CodePrefix: &prefix})
	require.NoError(t, err)

	items, err := env.items.ListByCategory(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "MA001", items[0].DisplayCode)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	env := newCategoryEnv(t)
	_, err := env.uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{ID: 42})
	assert.ErrorIs(t, err, poserr.ErrNotFound)
}

func TestDeleteCategoryRequiresConfirmation(t *testing.T) {
	env := newCategoryEnv(t)
	cat := env.create(t, "Makanan", "MA")

	err := env.uc.DeleteCategory(context.Background(), cat.ID, false)
	assert.ErrorIs(t, err, poserr.ErrNotConfirmed)

	cats, err := env.uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestDeleteCategoryCascades(t *testing.T) {
	env := newCategoryEnv(t)
	food := env.create(t, "Makanan", "MA")
	drink := env.create(t, "Minuman", "MI")
	foodItem := env.addItem(t, food.ID, "Nasi Goreng")
	drinkItem := env.addItem(t, drink.ID, "Es Teh")
	ctx := context.Background()

	// Ledger entries for both items; only the food one may go.
	now := time.Now()
	env.db.Sales = append(env.db.Sales,
		&model.SaleLine{ID: 1, ItemID: foodItem.ID, DisplayCode: foodItem.DisplayCode, ItemName: foodItem.Name, Quantity: 1, UnitPrice: 1000, LineTotal: 1000, CommittedAt: now},
		&model.SaleLine{ID: 2, ItemID: drinkItem.ID, DisplayCode: drinkItem.DisplayCode, ItemName: drinkItem.Name, Quantity: 2, UnitPrice: 1000, LineTotal: 2000, CommittedAt: now},
	)

	require.NoError(t, env.uc.DeleteCategory(ctx, food.ID, true))

	cats, err := env.uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, drink.ID, cats[0].ID)

	gone, err := env.items.FindByCode(ctx, foodItem.DisplayCode)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.Len(t, env.db.Sales, 1)
	assert.Equal(t, drinkItem.ID, env.db.Sales[0].ItemID)
}

func TestDeleteCategoryScopesSalesCascadeByItemID(t *testing.T) {
	env := newCategoryEnv(t)
	food := env.create(t, "Makanan", "MA")
	drink := env.create(t, "Minuman", "MI")
	foodItem := env.addItem(t, food.ID, "Nasi Goreng")
	drinkItem := env.addItem(t, drink.ID, "Es Teh")
	ctx := context.Background()

	// Both sale lines show the same historical code string; the cascade
	// must only match the deleted category's item.
	now := time.Now()
	env.db.Sales = append(env.db.Sales,
		&model.SaleLine{ID: 1, ItemID: foodItem.ID, DisplayCode: "MA001", Quantity: 1, UnitPrice: 1000, LineTotal: 1000, CommittedAt: now},
		&model.SaleLine{ID: 2, ItemID: drinkItem.ID, DisplayCode: "MA001", Quantity: 1, UnitPrice: 1000, LineTotal: 1000, CommittedAt: now},
	)

	require.NoError(t, env.uc.DeleteCategory(ctx, food.ID, true))

	require.Len(t, env.db.Sales, 1)
	assert.Equal(t, drinkItem.ID, env.db.Sales[0].ItemID)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	env := newCategoryEnv(t)
	err := env.uc.DeleteCategory(context.Background(), 42, true)
	assert.ErrorIs(t, err, poserr.ErrNotFound)
}
