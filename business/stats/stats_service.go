package stats

import (
	"context"
	"fmt"
	"time"

	"familyGrocery/domain"
	"familyGrocery/pkg/logger"
)

// PurchaseRepository contract interface
type PurchaseRepository interface {
	FindProductNamesInPeriod(ctx context.Context, start, end *time.Time) ([]string, error)
}

type statsService struct {
	purchaseRepo PurchaseRepository
}

func NewStatsService(purchaseRepo PurchaseRepository) *statsService {
	return &statsService{
		purchaseRepo: purchaseRepo,
	}
}

// TopProducts reports the most frequently bought product(s) among purchases
// whose date falls within the inclusive bounds. Nil bounds are open. An empty
// period is not an error; the report just carries no top products.
func (s *statsService) TopProducts(ctx context.Context, start, end *time.Time) (domain.TopProductsReport, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing top products")
		return domain.TopProductsReport{}, fmt.Errorf("context error: %w", err)
	}

	names, err := s.purchaseRepo.FindProductNamesInPeriod(ctx, start, end)
	if err != nil {
		logger.Error("Failed to load purchases for period", err)
		return domain.TopProductsReport{}, err
	}

	return domain.TopProductsReport{
		Period:      domain.Period{Start: start, End: end},
		TopProducts: MostFrequentProducts(names),
	}, nil
}
