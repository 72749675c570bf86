package handler

import (
	"context"
	"testing"

	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/repositories/docstore"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*CatalogHandler, docstore.Store) {
	t.Helper()
	store := docstore.NewMemoryStore()
	return NewCatalogHandler(store, configs.Configs{}), store
}

func TestSeedPopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)

	count, err := h.Seed(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 8, count)

	products, err := h.GetAllProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 8)

	// seeding is idempotent
	count, err = h.Seed(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGetProductByIDNormalizesAndCaches(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler(t)

	id, err := store.Insert(ctx, ProductsCollection, map[string]interface{}{
		"name":  "Trà sữa thử nghiệm",
		"price": float64(45000),
	})
	assert.NoError(t, err)

	product, err := h.GetProductByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(45000), product.BasePrice)
	assert.Len(t, product.Sizes, 3, "missing sizes are synthesized")

	// second read is served from cache and stays normalized
	again, err := h.GetProductByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, product, again)
}

func TestGetProductByIDNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	_, err := h.GetProductByID(context.Background(), "missing")
	assert.Error(t, err)
}

func TestGetProductsByCategory(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)
	_, err := h.Seed(ctx)
	assert.NoError(t, err)

	coffee, err := h.GetProductsByCategory(ctx, "coffee")
	assert.NoError(t, err)
	assert.Len(t, coffee, 2)
	for _, product := range coffee {
		assert.Equal(t, "coffee", product.CategoryID)
	}

	all, err := h.GetProductsByCategory(ctx, "all")
	assert.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestHighlightQueriesRespectLimit(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)
	_, err := h.Seed(ctx)
	assert.NoError(t, err)

	best, err := h.GetBestSellers(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, best, 4, "default limit is 4")
	for _, product := range best {
		assert.True(t, product.IsBestSeller)
	}

	fresh, err := h.GetNewProducts(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestGetCategoriesCounts(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)
	_, err := h.Seed(ctx)
	assert.NoError(t, err)

	categories, err := h.GetCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 4)

	byID := make(map[string]int)
	for _, category := range categories {
		byID[category.ID] = category.Count
	}
	assert.Equal(t, 3, byID["milk-tea"])
	assert.Equal(t, 2, byID["coffee"])
	assert.Equal(t, 2, byID["fruit-tea"])
	assert.Equal(t, 1, byID["smoothie"])
}

func TestUpdateProductInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)

	id, err := h.CreateProduct(ctx, map[string]interface{}{
		"name":  "Trà gừng",
		"price": float64(30000),
	})
	assert.NoError(t, err)

	before, err := h.GetProductByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(30000), before.BasePrice)

	err = h.UpdateProduct(ctx, id, map[string]interface{}{"price": float64(32000)})
	assert.NoError(t, err)

	after, err := h.GetProductByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(32000), after.BasePrice)
	assert.Equal(t, "Trà gừng", after.Name, "untouched fields survive a partial update")
}

func TestUpdateMissingProduct(t *testing.T) {
	h, _ := newTestHandler(t)
	err := h.UpdateProduct(context.Background(), "missing", map[string]interface{}{"price": 1})
	assert.Error(t, err)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)

	id, err := h.CreateProduct(ctx, map[string]interface{}{"name": "Tạm thời", "price": float64(10000)})
	assert.NoError(t, err)

	_, err = h.GetProductByID(ctx, id)
	assert.NoError(t, err)

	assert.NoError(t, h.DeleteProduct(ctx, id))

	_, err = h.GetProductByID(ctx, id)
	assert.Error(t, err)
}
