package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreInsertAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Insert(ctx, "products", map[string]interface{}{"name": "Trà Sữa", "price": 45000})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, "products", id)
	require.NoError(t, err)
	assert.Equal(t, "Trà Sữa", got["name"])
	assert.Equal(t, id, got["id"])
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "products", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQueryByField(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Insert(ctx, "products", map[string]interface{}{"category": "ca-phe", "name": "Cà Phê Sữa Đá"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "products", map[string]interface{}{"category": "tra-sua", "name": "Trà Đào"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "products", map[string]interface{}{"category": "ca-phe", "name": "Cappuccino"})
	require.NoError(t, err)

	docs, err := store.Query(ctx, "products", "category", "ca-phe", QueryOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Cà Phê Sữa Đá", docs[0].Data["name"])
	assert.Equal(t, "Cappuccino", docs[1].Data["name"])
}

func TestMemoryStoreQueryBooleanAndLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Insert(ctx, "products", map[string]interface{}{"isBestSeller": true})
		require.NoError(t, err)
	}
	docs, err := store.Query(ctx, "products", "isBestSeller", true, QueryOptions{Limit: 4})
	require.NoError(t, err)
	assert.Len(t, docs, 4)
}

func TestMemoryStoreUpdateIsPartialMerge(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Insert(ctx, "products", map[string]interface{}{
		"name":   "Sinh Tố Bơ",
		"price":  55000,
		"rating": 4.7,
	})
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, "products", id, map[string]interface{}{"rating": 4.8}))

	got, err := store.Get(ctx, "products", id)
	require.NoError(t, err)
	assert.Equal(t, 4.8, got["rating"])
	assert.Equal(t, "Sinh Tố Bơ", got["name"], "untouched fields must survive a partial update")
	assert.Equal(t, 55000, got["price"])
}

func TestMemoryStoreDeleteAndOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Insert(ctx, "orders", map[string]interface{}{"userId": "u1"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "orders", map[string]interface{}{"userId": "u1"})
	require.NoError(t, err)

	docs, err := store.Query(ctx, "orders", "userId", "u1", QueryOptions{OrderByCreatedDesc: true})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, first, docs[1].ID, "descending order puts the oldest document last")

	require.NoError(t, store.Delete(ctx, "orders", first))
	docs, err = store.GetAll(ctx, "orders")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
