package rest

import (
	"context"
	"net/http"
	"time"

	"familyGrocery/domain"
	"familyGrocery/pkg/logger"
	"familyGrocery/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type StatsService interface {
	TopProducts(ctx context.Context, start, end *time.Time) (domain.TopProductsReport, error)
}

type StatsHandler struct {
	statsService StatsService
	timeout      time.Duration
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		timeout:      10 * time.Second,
	}
}

type TopProductsEmptyResponse struct {
	Message     string                `json:"message"`
	TopProducts []domain.ProductCount `json:"top_products"`
}

// GetTopProduct answers GET /stats/top-product. Both date bounds are optional
// and inclusive; dates are accepted as 2006-01-02 or RFC 3339.
func (h *StatsHandler) GetTopProduct(c echo.Context) error {
	metrics.TopProductRequests.Inc()

	start, err := parseDateParam(c.QueryParam("start_date"))
	if err != nil {
		logger.Error("Invalid start_date", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid start_date"})
	}

	end, err := parseDateParam(c.QueryParam("end_date"))
	if err != nil {
		logger.Error("Invalid end_date", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid end_date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.statsService.TopProducts(ctx, start, end)
	if err != nil {
		logger.Error("Failed to compute top products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if len(report.TopProducts) == 0 {
		return c.JSON(http.StatusOK, TopProductsEmptyResponse{
			Message:     "no purchases in this period",
			TopProducts: []domain.ProductCount{},
		})
	}

	return c.JSON(http.StatusOK, report)
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.ParseInLocation("2006-01-02", value, time.UTC); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
