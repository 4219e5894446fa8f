package rest

import (
	"net/http"

	"familyGrocery/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to the family grocery API",
	})
}

// DBCheck probes the database with a trivial query. Failures are reported in
// the response body, never fatal to the process.
func (h *HealthHandler) DBCheck(c echo.Context) error {
	if err := h.db.WithContext(c.Request().Context()).Exec("SELECT 1").Error; err != nil {
		logger.Error("Database check failed", err)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "database connection established",
	})
}
