package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"familyGrocery/domain"
	"familyGrocery/internal/repository/postgres"
	"familyGrocery/pkg/logger"
	"familyGrocery/pkg/metrics"
)

// Validation errors, raised before anything touches the database.
var (
	ErrEmptyProductName = errors.New("product name is required")
	ErrInvalidPrice     = errors.New("price must be greater than 0")
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByName(ctx context.Context, name string) (domain.Product, error)
}

// PurchaseRepository contract interface
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	FindAllWithProduct(ctx context.Context) ([]domain.PurchaseView, error)
}

type purchaseService struct {
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	now          func() time.Time
}

func NewPurchaseService(productRepo ProductRepository, purchaseRepo PurchaseRepository) *purchaseService {
	return &purchaseService{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// RecordPurchase validates the input, resolves or lazily creates the product,
// persists the purchase, and returns the joined view. The product row is
// durable before the purchase referencing it is written. A missing date is
// stamped with the service clock, not a database default.
func (s *purchaseService) RecordPurchase(ctx context.Context, productName string, price float64, purchaseDate *time.Time) (*domain.PurchaseView, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recording purchase")
		return nil, fmt.Errorf("context error: %w", err)
	}

	name := strings.TrimSpace(productName)
	if name == "" {
		logger.Error("Invalid purchase data: product name is required")
		return nil, ErrEmptyProductName
	}

	if price <= 0 {
		logger.Error("Invalid purchase data: price must be greater than 0")
		return nil, ErrInvalidPrice
	}

	product, err := s.findOrCreateProduct(ctx, name)
	if err != nil {
		logger.Error("failed to resolve product", err)
		return nil, err
	}

	date := s.now()
	if purchaseDate != nil {
		date = *purchaseDate
	}

	newPurchase := &domain.Purchase{
		ProductID:    product.ID,
		Price:        price,
		Quantity:     1,
		PurchaseDate: date,
	}

	if err := s.purchaseRepo.Create(ctx, newPurchase); err != nil {
		logger.Error("failed to create purchase", err)
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	metrics.PurchaseCreateTotal.Inc()
	logger.Info("purchase recorded", "purchase_id", newPurchase.ID, "product", product.Name)

	return &domain.PurchaseView{
		ID:           newPurchase.ID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Price:        newPurchase.Price,
		PurchaseDate: newPurchase.PurchaseDate,
	}, nil
}

// findOrCreateProduct looks the product up by exact name and creates it when
// absent. Two writers racing on a new name both reach the insert; the unique
// index rejects the loser, which then retries as a lookup.
func (s *purchaseService) findOrCreateProduct(ctx context.Context, name string) (domain.Product, error) {
	product, err := s.productRepo.FindByName(ctx, name)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, postgres.ErrProductNotFound) {
		return domain.Product{}, err
	}

	newProduct := &domain.Product{Name: name}
	err = s.productRepo.Create(ctx, newProduct)
	if err == nil {
		metrics.ProductAutoCreateTotal.Inc()
		logger.Info("product created", "product_id", newProduct.ID, "name", name)
		return *newProduct, nil
	}

	if errors.Is(err, postgres.ErrDuplicateProductName) {
		// Lost the race, the row exists now.
		return s.productRepo.FindByName(ctx, name)
	}

	return domain.Product{}, err
}

// ListPurchases returns every purchase joined with its product name, most
// recent first.
func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.PurchaseView, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing purchases")
		return nil, fmt.Errorf("context error: %w", err)
	}

	purchases, err := s.purchaseRepo.FindAllWithProduct(ctx)
	if err != nil {
		logger.Error("Failed to find all purchases", err)
		return nil, err
	}

	return purchases, nil
}
