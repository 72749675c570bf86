package router

import (
	"github.com/drinkshop/backend/internal/cart/controller"
	"github.com/drinkshop/backend/pkg/httpframework"
)

// Init expects http framework and the cart controller to be initialized
// before calling this function
func Init() {
	api := httpframework.Instance().Group("/api/v1/cart")
	{
		api.GET("", controller.NewController().GetCart)
		api.POST("/items", controller.NewController().AddItem)
		api.PUT("/items/:lineId", controller.NewController().UpdateItem)
		api.DELETE("/items/:lineId", controller.NewController().RemoveItem)
		api.DELETE("", controller.NewController().ClearCart)
		api.PUT("/open", controller.NewController().SetOpen)
	}
}
