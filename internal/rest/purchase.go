package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"familyGrocery/business/purchase"
	"familyGrocery/domain"
	"familyGrocery/pkg/logger"
	"familyGrocery/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PurchaseService interface {
	RecordPurchase(ctx context.Context, productName string, price float64, purchaseDate *time.Time) (*domain.PurchaseView, error)
	ListPurchases(ctx context.Context) ([]domain.PurchaseView, error)
}

type PurchaseHandler struct {
	purchaseService PurchaseService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewPurchaseHandler(purchaseService PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreatePurchaseRequest struct {
	ProductName  string     `json:"product_name" validate:"required"`
	Price        float64    `json:"price" validate:"required,gt=0"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.PurchaseCreateLatency.Observe(time.Since(start).Seconds())
	}()

	var req CreatePurchaseRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind purchase request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate purchase request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.purchaseService.RecordPurchase(ctx, req.ProductName, req.Price, req.PurchaseDate)
	if err != nil {
		logger.Error("Failed to record purchase", err)
		if errors.Is(err, purchase.ErrEmptyProductName) || errors.Is(err, purchase.ErrInvalidPrice) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, view)
}

func (h *PurchaseHandler) GetAllPurchases(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	purchases, err := h.purchaseService.ListPurchases(ctx)
	if err != nil {
		logger.Error("Failed to find all purchases", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, purchases)
}
