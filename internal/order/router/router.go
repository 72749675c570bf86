package router

import (
	"github.com/drinkshop/backend/internal/order/controller"
	"github.com/drinkshop/backend/pkg/httpframework"
)

// Init expects http framework and the order controller to be initialized
// before calling this function
func Init() {
	api := httpframework.Instance().Group("/api/v1/orders")
	{
		api.POST("", controller.NewController().CreateOrder)
		api.GET("", controller.NewController().GetMyOrders)
		api.GET("/all", controller.NewController().GetAllOrders)
		api.GET("/:id", controller.NewController().GetOrder)
		api.PUT("/:id/status", controller.NewController().UpdateStatus)
	}
}
