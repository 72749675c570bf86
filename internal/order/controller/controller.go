package controller

import (
	"net/http"
	"sync"

	authcontroller "github.com/drinkshop/backend/internal/auth/controller"
	"github.com/drinkshop/backend/internal/cart"
	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/order/handler"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/drinkshop/backend/pkg/payment"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Order interface {
	CreateOrder(ctx *gin.Context)
	GetMyOrders(ctx *gin.Context)
	GetOrder(ctx *gin.Context)
	GetAllOrders(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
}

var (
	orderController Order
	once            sync.Once
)

type OrderController struct {
	Handler handler.Recorder
	Carts   *cart.Manager
	Bank    payment.BankConfig
}

// Init wires the order controller against the shared cart manager
func Init(carts *cart.Manager, config configs.Configs) Order {
	once.Do(func() {
		orderController = &OrderController{
			Handler: handler.Instance(),
			Carts:   carts,
			Bank:    payment.FromConfigs(config),
		}
	})
	return orderController
}

func NewController() Order {
	if orderController == nil {
		log.Fatal().Msg("Order controller not initialized")
	}
	return orderController
}

type createOrderRequest struct {
	PaymentMethod string               `json:"paymentMethod"`
	Delivery      handler.DeliveryInfo `json:"delivery"`
}

func (o *OrderController) CreateOrder(ctx *gin.Context) {
	sessionKey := ctx.GetHeader(cart.SessionHeader)
	if sessionKey == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing " + cart.SessionHeader + " header"})
		return
	}
	var request createOrderRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := authcontroller.OptionalIdentity(ctx)
	store := o.Carts.Store(ctx, sessionKey)

	order, err := o.Handler.CreateOrder(ctx, &handler.CreateRequest{
		Customer: handler.Customer{
			UID:         identity.UID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
			IsGuest:     identity.IsGuest(),
		},
		Delivery:      request.Delivery,
		Lines:         store.Lines(),
		PaymentMethod: request.PaymentMethod,
	})
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}

	// the cart survives if clearing fails; the order is already recorded
	if err := store.Clear(ctx); err != nil {
		log.Error().Err(err).Str("orderId", order.ID).Msg("Failed to clear cart after checkout")
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order":   order,
		"payment": o.paymentInstructions(order),
	})
}

func (o *OrderController) paymentInstructions(order *handler.Order) gin.H {
	switch order.PaymentMethod {
	case payment.MethodMoMo:
		return gin.H{
			"method": order.PaymentMethod,
			"phone":  o.Bank.MoMoPhone,
			"qrUrl":  o.Bank.MoMoQRURL(order.Total),
		}
	default:
		return gin.H{
			"method":      order.PaymentMethod,
			"bankCode":    o.Bank.BankCode,
			"accountNo":   o.Bank.AccountNo,
			"accountName": o.Bank.AccountName,
			"qrUrl":       o.Bank.VietQRURL(order.Total),
		}
	}
}

func (o *OrderController) GetMyOrders(ctx *gin.Context) {
	identity, err := authcontroller.ParseIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	orders, err := o.Handler.GetOrdersByUser(ctx, identity.UID)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func (o *OrderController) GetOrder(ctx *gin.Context) {
	identity, err := authcontroller.ParseIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	order, err := o.Handler.GetOrderByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	if order.Customer.UID != identity.UID && !identity.IsAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "not authorized to view this order"})
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func (o *OrderController) GetAllOrders(ctx *gin.Context) {
	if _, err := authcontroller.RequireAdmin(ctx); err != nil {
		return
	}
	orders, err := o.Handler.GetAllOrders(ctx)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (o *OrderController) UpdateStatus(ctx *gin.Context) {
	if _, err := authcontroller.RequireAdmin(ctx); err != nil {
		return
	}
	var request updateStatusRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := o.Handler.UpdateStatus(ctx, ctx.Param("id"), request.Status); err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
