package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-service/config"
	"shop-service/internal/producer"
	"shop-service/internal/repository"
	"shop-service/internal/router"
	"shop-service/internal/service"
	"shop-service/internal/session"
	"shop-service/internal/token"
	"shop-service/pkg/database"
	"shop-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Shop Service API
// @Version 1.0
// @Description Каталог, корзина, заказы и купоны интернет-магазина
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	sessions, err := session.NewStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
	if err != nil {
		log.Fatal("Ошибка подключения к Redis", zap.Error(err))
	}
	defer sessions.Close()

	events := producer.NewOrderEventProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer events.Close()

	repos := repository.New(db)

	svcs := router.Services{
		Catalog:  service.NewCatalogService(repos.Categories, repos.Products, log),
		Cart:     service.NewCartService(repos.Products, sessions, log),
		Orders:   service.NewOrderService(repos.Orders, repos.OrderItems, repos.Products, repos.Checkouts, repos.Coupons, repos.Addresses, sessions, events, log),
		Address:  service.NewAddressService(repos.Addresses, log),
		Coupons:  service.NewCouponService(repos.Coupons, log),
		Wishlist: service.NewWishlistService(repos.Wishlists, repos.Products),
	}

	verifier := token.NewHSVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	r := router.Router(svcs, verifier, cfg.Redis.TTLSeconds, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
