package router

import (
	"github.com/drinkshop/backend/internal/auth/controller"
	"github.com/drinkshop/backend/pkg/httpframework"
	"github.com/gin-gonic/gin"
)

// Init expects http framework to be initialized before calling this function
func Init() {
	api := httpframework.Instance().Group("/api/v1/auth")
	{
		api.POST("/register", controller.NewController().Register)
		api.POST("/login", controller.NewController().Login)
		api.POST("/logout", controller.NewController().Logout)
		api.GET("/me", controller.NewController().Me)
	}
	httpframework.Instance().GET("/health", Health)
}

func Health(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Application is up!!!"})
}
