package postgres

import (
	"context"
	"fmt"
	"time"

	"familyGrocery/domain"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		DB: db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	return nil
}

// FindAllWithProduct returns every purchase joined with its product name,
// most recent first.
func (r *PurchaseRepository) FindAllWithProduct(ctx context.Context) ([]domain.PurchaseView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var views []domain.PurchaseView
	err := r.DB.WithContext(ctx).
		Model(&domain.Purchase{}).
		Select("purchases.id, purchases.product_id, products.name AS product_name, purchases.price, purchases.purchase_date").
		Joins("JOIN products ON products.id = purchases.product_id").
		Order("purchases.purchase_date DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}

	return views, nil
}

// FindProductNamesInPeriod returns one product name per purchase whose date
// falls inside the bounds, in purchase-date order. Nil bounds are open.
// Both bounds are inclusive; the end bound covers the whole end day.
func (r *PurchaseRepository) FindProductNamesInPeriod(ctx context.Context, start, end *time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).
		Model(&domain.Purchase{}).
		Joins("JOIN products ON products.id = purchases.product_id").
		Order("purchases.purchase_date ASC")

	if start != nil {
		query = query.Where("purchases.purchase_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("purchases.purchase_date < ?", end.AddDate(0, 0, 1))
	}

	var names []string
	if err := query.Pluck("products.name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to find purchases in period: %w", err)
	}

	return names, nil
}
