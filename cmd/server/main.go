package main

import (
	"database/sql"

	"goshop/internal/config"
	"goshop/internal/db"
	"goshop/internal/httpserver"
	"goshop/internal/logger"
	"goshop/internal/order"
	"goshop/internal/payment"
	"goshop/internal/product"
	"goshop/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func newServer(cfg *config.Config, database *sql.DB) *gin.Engine {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	gateway := payment.NewInvoiceGateway(payment.GatewayOptions{
		APIKey:    cfg.PaymentAPIKey,
		BaseURL:   cfg.PaymentBaseURL,
		ReturnURL: cfg.PaymentReturnURL,
	})

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userRepo, gateway)

	return httpserver.NewRouter(httpserver.Deps{
		Config:   cfg,
		Products: productSvc,
		Users:    userSvc,
		Orders:   orderSvc,
	})
}
