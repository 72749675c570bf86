package controller

import (
	"net/http"
	"sync"

	"github.com/drinkshop/backend/internal/cart"
	cataloghandler "github.com/drinkshop/backend/internal/catalog/handler"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/drinkshop/backend/pkg/metric"
	"github.com/drinkshop/backend/pkg/money"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Cart interface {
	GetCart(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	UpdateItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
	ClearCart(ctx *gin.Context)
	SetOpen(ctx *gin.Context)
}

var (
	cartController Cart
	once           sync.Once
)

type CartController struct {
	Carts   *cart.Manager
	Catalog cataloghandler.Catalog
}

// Init wires the cart controller against the shared cart manager
func Init(carts *cart.Manager) Cart {
	once.Do(func() {
		cartController = &CartController{
			Carts:   carts,
			Catalog: cataloghandler.Instance(),
		}
	})
	return cartController
}

func NewController() Cart {
	if cartController == nil {
		log.Fatal().Msg("Cart controller not initialized")
	}
	return cartController
}

func (c *CartController) store(ctx *gin.Context) (*cart.Store, bool) {
	sessionKey := ctx.GetHeader(cart.SessionHeader)
	if sessionKey == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing " + cart.SessionHeader + " header"})
		return nil, false
	}
	return c.Carts.Store(ctx, sessionKey), true
}

func cartView(store *cart.Store) gin.H {
	total := store.Total()
	return gin.H{
		"lines":        store.Lines(),
		"total":        total,
		"displayTotal": money.Format(total),
		"count":        store.Count(),
		"isOpen":       store.IsOpen(),
	}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	store, ok := c.store(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, cartView(store))
}

type addItemRequest struct {
	ProductID string   `json:"productId"`
	Quantity  int64    `json:"quantity"`
	Size      string   `json:"size"`
	Toppings  []string `json:"toppings"`
}

func (c *CartController) AddItem(ctx *gin.Context) {
	store, ok := c.store(ctx)
	if !ok {
		return
	}
	var request addItemRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := c.Catalog.GetProductByID(ctx, request.ProductID)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	line, err := store.AddToCart(ctx, product, request.Quantity, request.Size, request.Toppings)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metric.Incr(metric.CartMutationCount, metric.BuildTag(metric.NewTag(metric.TagOperation, "add")))
	ctx.JSON(http.StatusOK, gin.H{"line": line, "cart": cartView(store)})
}

type updateItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (c *CartController) UpdateItem(ctx *gin.Context) {
	store, ok := c.store(ctx)
	if !ok {
		return
	}
	var request updateItemRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := store.UpdateQuantity(ctx, ctx.Param("lineId"), request.Quantity); err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metric.Incr(metric.CartMutationCount, metric.BuildTag(metric.NewTag(metric.TagOperation, "update")))
	ctx.JSON(http.StatusOK, cartView(store))
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	store, ok := c.store(ctx)
	if !ok {
		return
	}
	if err := store.RemoveFromCart(ctx, ctx.Param("lineId")); err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metric.Incr(metric.CartMutationCount, metric.BuildTag(metric.NewTag(metric.TagOperation, "remove")))
	ctx.JSON(http.StatusOK, cartView(store))
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	store, ok := c.store(ctx)
	if !ok {
		return
	}
	if err := store.Clear(ctx); err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metric.Incr(metric.CartMutationCount, metric.BuildTag(metric.NewTag(metric.TagOperation, "clear")))
	ctx.JSON(http.StatusOK, cartView(store))
}

type setOpenRequest struct {
	IsOpen bool `json:"isOpen"`
}

func (c *CartController) SetOpen(ctx *gin.Context) {
	store, ok := c.store(ctx)
	if !ok {
		return
	}
	var request setOpenRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store.SetOpen(request.IsOpen)
	ctx.JSON(http.StatusOK, cartView(store))
}
