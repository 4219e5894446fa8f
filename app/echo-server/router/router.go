package router

import (
	"familyGrocery/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/", handler.Root)
	e.GET("/db-check", handler.DBCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupPurchaseRoutes(e *echo.Echo, handler *rest.PurchaseHandler) {
	purchases := e.Group("/purchases")

	purchases.POST("", handler.CreatePurchase)
	purchases.GET("", handler.GetAllPurchases)
}

func SetupStatsRoutes(e *echo.Echo, handler *rest.StatsHandler) {
	stats := e.Group("/stats")

	stats.GET("/top-product", handler.GetTopProduct)
}

func SetupCategoryRoutes(e *echo.Echo, handler *rest.CategoryHandler) {
	categories := e.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory)
}
