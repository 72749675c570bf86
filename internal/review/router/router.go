package router

import (
	"github.com/drinkshop/backend/internal/review/controller"
	"github.com/drinkshop/backend/pkg/httpframework"
)

// Init expects http framework to be initialized before calling this function
func Init() {
	api := httpframework.Instance().Group("/api/v1/catalog")
	{
		api.POST("/products/:id/reviews", controller.NewController().SubmitReview)
		api.GET("/products/:id/reviews", controller.NewController().GetProductReviews)
	}
}
