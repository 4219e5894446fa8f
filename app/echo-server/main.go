package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"familyGrocery/app/echo-server/router"
	"familyGrocery/business/category"
	"familyGrocery/business/purchase"
	"familyGrocery/business/stats"
	"familyGrocery/internal/middleware"
	psqlRepo "familyGrocery/internal/repository/postgres"
	"familyGrocery/internal/rest"
	"familyGrocery/pkg/config"
	"familyGrocery/pkg/database"
	"familyGrocery/pkg/logger"
	"familyGrocery/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Family Grocery API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	purchaseRepo := psqlRepo.NewPurchaseRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)

	// Init service
	purchaseService := purchase.NewPurchaseService(productRepo, purchaseRepo)
	statsService := stats.NewStatsService(purchaseRepo)
	categoryService := category.NewCategoryService(categoryRepo)

	// Init handler
	purchaseHandler := rest.NewPurchaseHandler(purchaseService)
	statsHandler := rest.NewStatsHandler(statsService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	healthHandler := rest.NewHealthHandler(db)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	router.SetupHealthRoutes(e, healthHandler)
	router.SetupPurchaseRoutes(e, purchaseHandler)
	router.SetupStatsRoutes(e, statsHandler)
	router.SetupCategoryRoutes(e, categoryHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
