package controller

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	authcontroller "github.com/drinkshop/backend/internal/auth/controller"
	"github.com/drinkshop/backend/internal/catalog"
	"github.com/drinkshop/backend/internal/catalog/handler"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/drinkshop/backend/pkg/money"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetProducts(ctx *gin.Context)
	GetProduct(ctx *gin.Context)
	GetBestSellers(ctx *gin.Context)
	GetNewProducts(ctx *gin.Context)
	GetCategories(ctx *gin.Context)
	CreateProduct(ctx *gin.Context)
	UpdateProduct(ctx *gin.Context)
	DeleteProduct(ctx *gin.Context)
	SeedCatalog(ctx *gin.Context)
}

var (
	catalogController Catalog
	once              sync.Once
)

type CatalogController struct {
	Handler handler.Catalog
}

func NewController() Catalog {
	if catalogController == nil {
		once.Do(func() {
			catalogController = &CatalogController{
				Handler: handler.Instance(),
			}
		})
	}
	return catalogController
}

// productView decorates a product with display fields. The new badge wins
// when a product is both new and a best seller.
type productView struct {
	catalog.Product
	Badge        string `json:"badge,omitempty"`
	DisplayPrice string `json:"displayPrice"`
}

func newProductView(product catalog.Product) productView {
	badge := ""
	switch {
	case product.IsNew:
		badge = "new"
	case product.IsBestSeller:
		badge = "best-seller"
	}
	return productView{
		Product:      product,
		Badge:        badge,
		DisplayPrice: money.Format(product.BasePrice),
	}
}

func newProductViews(products []catalog.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}
	return views
}

func (c *CatalogController) GetProducts(ctx *gin.Context) {
	category := ctx.Query("category")
	products, err := c.Handler.GetProductsByCategory(ctx, category)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newProductViews(products))
}

func (c *CatalogController) GetProduct(ctx *gin.Context) {
	product, err := c.Handler.GetProductByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newProductView(product))
}

func (c *CatalogController) GetBestSellers(ctx *gin.Context) {
	c.highlight(ctx, c.Handler.GetBestSellers)
}

func (c *CatalogController) GetNewProducts(ctx *gin.Context) {
	c.highlight(ctx, c.Handler.GetNewProducts)
}

func (c *CatalogController) highlight(ctx *gin.Context, query func(ctx context.Context, limit int) ([]catalog.Product, error)) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	products, err := query(ctx, limit)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newProductViews(products))
}

func (c *CatalogController) GetCategories(ctx *gin.Context) {
	categories, err := c.Handler.GetCategories(ctx)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	if _, err := authcontroller.RequireAdmin(ctx); err != nil {
		return
	}
	var raw map[string]interface{}
	if err := ctx.BindJSON(&raw); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := c.Handler.CreateProduct(ctx, raw)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (c *CatalogController) UpdateProduct(ctx *gin.Context) {
	if _, err := authcontroller.RequireAdmin(ctx); err != nil {
		return
	}
	var patch map[string]interface{}
	if err := ctx.BindJSON(&patch); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := c.Handler.UpdateProduct(ctx, ctx.Param("id"), patch); err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (c *CatalogController) SeedCatalog(ctx *gin.Context) {
	if _, err := authcontroller.RequireAdmin(ctx); err != nil {
		return
	}
	count, err := c.Handler.Seed(ctx)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"seeded": count})
}

func (c *CatalogController) DeleteProduct(ctx *gin.Context) {
	if _, err := authcontroller.RequireAdmin(ctx); err != nil {
		return
	}
	if err := c.Handler.DeleteProduct(ctx, ctx.Param("id")); err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
