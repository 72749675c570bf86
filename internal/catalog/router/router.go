package router

import (
	"github.com/drinkshop/backend/internal/catalog/controller"
	"github.com/drinkshop/backend/pkg/httpframework"
)

// Init expects http framework to be initialized before calling this function
func Init() {
	api := httpframework.Instance().Group("/api/v1/catalog")
	{
		api.GET("/products", controller.NewController().GetProducts)
		api.GET("/products/:id", controller.NewController().GetProduct)
		api.GET("/best-sellers", controller.NewController().GetBestSellers)
		api.GET("/new-products", controller.NewController().GetNewProducts)
		api.GET("/categories", controller.NewController().GetCategories)
		api.POST("/products", controller.NewController().CreateProduct)
		api.PUT("/products/:id", controller.NewController().UpdateProduct)
		api.DELETE("/products/:id", controller.NewController().DeleteProduct)
		api.POST("/seed", controller.NewController().SeedCatalog)
	}
}
