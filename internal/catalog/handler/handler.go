package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coocood/freecache"
	"github.com/drinkshop/backend/internal/catalog"
	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/repositories/docstore"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/drinkshop/backend/pkg/metric"
	"github.com/rs/zerolog/log"
)

const (
	// ProductsCollection is the document store collection holding raw product records
	ProductsCollection = "products"

	defaultCacheSizeBytes = 16 * 1024 * 1024
	defaultCacheTTL       = 60 * time.Second
	defaultHighlightLimit = 4
)

// Catalog serves normalized products. Raw stored records never leave this
// package un-normalized.
type Catalog interface {
	GetAllProducts(ctx context.Context) ([]catalog.Product, error)
	GetProductByID(ctx context.Context, id string) (catalog.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]catalog.Product, error)
	GetBestSellers(ctx context.Context, limit int) ([]catalog.Product, error)
	GetNewProducts(ctx context.Context, limit int) ([]catalog.Product, error)
	GetCategories(ctx context.Context) ([]catalog.Category, error)
	CreateProduct(ctx context.Context, raw map[string]interface{}) (string, error)
	UpdateProduct(ctx context.Context, id string, patch map[string]interface{}) error
	DeleteProduct(ctx context.Context, id string) error
	Seed(ctx context.Context) (int, error)
}

var (
	catalogHandler Catalog
	once           sync.Once
)

type CatalogHandler struct {
	store    docstore.Store
	cache    *freecache.Cache
	cacheTTL time.Duration
}

// Init initializes the catalog handler with the given document store
func Init(store docstore.Store, config configs.Configs) Catalog {
	once.Do(func() {
		catalogHandler = NewCatalogHandler(store, config)
	})
	return catalogHandler
}

// Instance returns the initialized catalog handler
func Instance() Catalog {
	if catalogHandler == nil {
		log.Fatal().Msg("Catalog handler not initialized")
	}
	return catalogHandler
}

func NewCatalogHandler(store docstore.Store, config configs.Configs) *CatalogHandler {
	cacheSize := config.CatalogCacheSizeBytes
	if cacheSize <= 0 {
		cacheSize = defaultCacheSizeBytes
	}
	ttl := defaultCacheTTL
	if config.CatalogCacheTtlSeconds > 0 {
		ttl = time.Duration(config.CatalogCacheTtlSeconds) * time.Second
	}
	return &CatalogHandler{
		store:    store,
		cache:    freecache.NewCache(cacheSize),
		cacheTTL: ttl,
	}
}

func (h *CatalogHandler) GetAllProducts(ctx context.Context) ([]catalog.Product, error) {
	docs, err := h.store.GetAll(ctx, ProductsCollection)
	if err != nil {
		return nil, err
	}
	return normalizeDocs(docs), nil
}

func (h *CatalogHandler) GetProductByID(ctx context.Context, id string) (catalog.Product, error) {
	if cached, err := h.cache.Get([]byte(id)); err == nil {
		var product catalog.Product
		if err := json.Unmarshal(cached, &product); err == nil {
			metric.Incr(metric.CacheHitCount, metric.BuildTag(metric.NewTag(metric.TagCollection, ProductsCollection)))
			return product, nil
		}
	}
	metric.Incr(metric.CacheMissCount, metric.BuildTag(metric.NewTag(metric.TagCollection, ProductsCollection)))

	raw, err := h.store.Get(ctx, ProductsCollection, id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return catalog.Product{}, api.NewNotFoundError("product not found")
		}
		return catalog.Product{}, err
	}
	product := catalog.Normalize(raw)
	h.cacheProduct(product)
	return product, nil
}

func (h *CatalogHandler) GetProductsByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	if category == "" || category == "all" {
		return h.GetAllProducts(ctx)
	}
	docs, err := h.store.Query(ctx, ProductsCollection, "category", category, docstore.QueryOptions{})
	if err != nil {
		return nil, err
	}
	return normalizeDocs(docs), nil
}

func (h *CatalogHandler) GetBestSellers(ctx context.Context, limit int) ([]catalog.Product, error) {
	return h.queryFlag(ctx, "isBestSeller", limit)
}

func (h *CatalogHandler) GetNewProducts(ctx context.Context, limit int) ([]catalog.Product, error) {
	return h.queryFlag(ctx, "isNew", limit)
}

func (h *CatalogHandler) queryFlag(ctx context.Context, field string, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = defaultHighlightLimit
	}
	docs, err := h.store.Query(ctx, ProductsCollection, field, true, docstore.QueryOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	return normalizeDocs(docs), nil
}

func (h *CatalogHandler) GetCategories(ctx context.Context) ([]catalog.Category, error) {
	products, err := h.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	var categories []catalog.Category
	index := make(map[string]int)
	for _, product := range products {
		if product.CategoryID == "" {
			continue
		}
		if i, ok := index[product.CategoryID]; ok {
			categories[i].Count++
			continue
		}
		index[product.CategoryID] = len(categories)
		categories = append(categories, catalog.Category{
			ID:    product.CategoryID,
			Name:  product.CategoryName,
			Image: product.Image,
			Count: 1,
		})
	}
	return categories, nil
}

func (h *CatalogHandler) CreateProduct(ctx context.Context, raw map[string]interface{}) (string, error) {
	raw["createdAt"] = time.Now().Format(time.RFC3339)
	id, err := h.store.Insert(ctx, ProductsCollection, raw)
	if err != nil {
		return "", err
	}
	log.Info().Str("productId", id).Msg("Product created")
	return id, nil
}

func (h *CatalogHandler) UpdateProduct(ctx context.Context, id string, patch map[string]interface{}) error {
	patch["updatedAt"] = time.Now().Format(time.RFC3339)
	if err := h.store.Update(ctx, ProductsCollection, id, patch); err != nil {
		if err == docstore.ErrNotFound {
			return api.NewNotFoundError("product not found")
		}
		return err
	}
	h.cache.Del([]byte(id))
	return nil
}

func (h *CatalogHandler) DeleteProduct(ctx context.Context, id string) error {
	if err := h.store.Delete(ctx, ProductsCollection, id); err != nil {
		return err
	}
	h.cache.Del([]byte(id))
	return nil
}

// Seed inserts the default drink menu when the products collection is empty
func (h *CatalogHandler) Seed(ctx context.Context) (int, error) {
	existing, err := h.store.GetAll(ctx, ProductsCollection)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, raw := range defaultMenu() {
		if _, err := h.store.Insert(ctx, ProductsCollection, raw); err != nil {
			return 0, err
		}
	}
	log.Info().Int("count", len(defaultMenu())).Msg("Seeded default product menu")
	return len(defaultMenu()), nil
}

func (h *CatalogHandler) cacheProduct(product catalog.Product) {
	payload, err := json.Marshal(product)
	if err != nil {
		return
	}
	_ = h.cache.Set([]byte(product.ID), payload, int(h.cacheTTL.Seconds()))
}

func normalizeDocs(docs []docstore.Document) []catalog.Product {
	products := make([]catalog.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, catalog.Normalize(doc.Data))
	}
	return products
}
