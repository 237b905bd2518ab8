package main

import (
	"database/sql"
	"net/http"

	"soyhub-be/internal/announcement"
	"soyhub-be/internal/api"
	"soyhub-be/internal/cart"
	"soyhub-be/internal/config"
	"soyhub-be/internal/db"
	"soyhub-be/internal/logger"
	"soyhub-be/internal/order"
	"soyhub-be/internal/product"
	"soyhub-be/internal/user"

	"go.uber.org/zap"
)

// seams for testing
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

// newServer wires repositories, services and the HTTP router.
func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	cartStore := cart.NewStore()
	cartSvc := cart.NewService(cartStore, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc, userRepo, productRepo, cfg.DeliveryFee)

	annRepo := announcement.NewRepository(database)
	annSvc := announcement.NewService(annRepo)

	return api.NewRouter(api.Deps{
		UserSvc:     userSvc,
		ProductSvc:  productSvc,
		CartSvc:     cartSvc,
		OrderSvc:    orderSvc,
		AnnSvc:      annSvc,
		DeliveryFee: cfg.DeliveryFee,
	})
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}
