package main

import (
	"context"
	"strconv"

	"github.com/gin-contrib/cors"

	authhandler "github.com/drinkshop/backend/internal/auth/handler"
	authRouter "github.com/drinkshop/backend/internal/auth/router"
	"github.com/drinkshop/backend/internal/cart"
	cartcontroller "github.com/drinkshop/backend/internal/cart/controller"
	cartRouter "github.com/drinkshop/backend/internal/cart/router"
	cataloghandler "github.com/drinkshop/backend/internal/catalog/handler"
	catalogRouter "github.com/drinkshop/backend/internal/catalog/router"
	"github.com/drinkshop/backend/internal/configs"
	ordercontroller "github.com/drinkshop/backend/internal/order/controller"
	orderhandler "github.com/drinkshop/backend/internal/order/handler"
	orderRouter "github.com/drinkshop/backend/internal/order/router"
	"github.com/drinkshop/backend/internal/repositories/docstore"
	"github.com/drinkshop/backend/internal/repositories/slot"
	reviewhandler "github.com/drinkshop/backend/internal/review/handler"
	reviewRouter "github.com/drinkshop/backend/internal/review/router"

	"github.com/drinkshop/backend/pkg/httpframework"
	"github.com/drinkshop/backend/pkg/infra"
	"github.com/drinkshop/backend/pkg/logger"
	"github.com/drinkshop/backend/pkg/metric"
	"github.com/drinkshop/backend/pkg/scheduler"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Configs configs.Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)

	// Initialize logger first (needed for logging)
	logger.Init(appConfig.Configs)

	// Database initialization (MySQL documents + Redis cart slots)
	infra.InitDBConnectors(appConfig.Configs)

	metric.Init(appConfig.Configs)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", cart.SessionHeader}
	corsConfig.AllowCredentials = true
	httpframework.Init(cors.New(corsConfig))

	store, err := docstore.NewSQLStore(infra.SQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize document store")
	}

	cataloghandler.Init(store, appConfig.Configs)
	if _, err := cataloghandler.Instance().Seed(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to seed catalog")
	}
	reviewhandler.Init(store)
	orderhandler.Init(store)
	authhandler.InitAuthHandler(appConfig.Configs)

	slotStorage, err := slot.NewRedisStorage(infra.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cart slot storage")
	}
	carts := cart.NewManager(slotStorage)
	cartcontroller.Init(carts)
	ordercontroller.Init(carts, appConfig.Configs)

	authRouter.Init()
	catalogRouter.Init()
	reviewRouter.Init()
	cartRouter.Init()
	orderRouter.Init()

	scheduler.Init(appConfig.Configs)

	// Use default port if not set (for local testing)
	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 8080
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 8080")
	}
	httpframework.Instance().Run(":" + strconv.Itoa(port))
}
