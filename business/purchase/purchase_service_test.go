package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"familyGrocery/domain"
	"familyGrocery/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
)

// --- Mock repositories ---

type MockProductRepo struct {
	Products      map[string]domain.Product
	CreateErr     error
	CreateErrOnce bool
	NextID        uint64
	CreatedCount  int
}

func NewMockProductRepo() *MockProductRepo {
	return &MockProductRepo{
		Products: make(map[string]domain.Product),
		NextID:   1,
	}
}

func (m *MockProductRepo) FindByName(ctx context.Context, name string) (domain.Product, error) {
	p, ok := m.Products[name]
	if !ok {
		return domain.Product{}, postgres.ErrProductNotFound
	}
	return p, nil
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateErr != nil {
		err := m.CreateErr
		if m.CreateErrOnce {
			m.CreateErr = nil
		}
		return err
	}
	product.ID = m.NextID
	m.NextID++
	m.Products[product.Name] = *product
	m.CreatedCount++
	return nil
}

type MockPurchaseRepo struct {
	Purchases []domain.Purchase
	CreateErr error
	NextID    uint64
}

func NewMockPurchaseRepo() *MockPurchaseRepo {
	return &MockPurchaseRepo{NextID: 1}
}

func (m *MockPurchaseRepo) Create(ctx context.Context, purchase *domain.Purchase) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	purchase.ID = m.NextID
	m.NextID++
	m.Purchases = append(m.Purchases, *purchase)
	return nil
}

func (m *MockPurchaseRepo) FindAllWithProduct(ctx context.Context) ([]domain.PurchaseView, error) {
	return nil, nil
}

// --- Tests ---

func TestRecordPurchaseCreatesProductOnFirstSight(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	svc := NewPurchaseService(productRepo, purchaseRepo)

	view, err := svc.RecordPurchase(context.Background(), "pomme", 2.50, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, productRepo.CreatedCount)
	assert.Len(t, purchaseRepo.Purchases, 1)
	assert.Equal(t, "pomme", view.ProductName)
	assert.Equal(t, 2.50, view.Price)
	assert.Equal(t, view.ProductID, purchaseRepo.Purchases[0].ProductID)
	assert.Equal(t, 1, purchaseRepo.Purchases[0].Quantity)
}

func TestRecordPurchaseReusesExistingProduct(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	svc := NewPurchaseService(productRepo, purchaseRepo)

	_, err := svc.RecordPurchase(context.Background(), "pomme", 2.50, nil)
	assert.NoError(t, err)

	_, err = svc.RecordPurchase(context.Background(), "pomme", 3.00, nil)
	assert.NoError(t, err)

	assert.Equal(t, 1, productRepo.CreatedCount, "second purchase must not create a new product")
	assert.Len(t, purchaseRepo.Purchases, 2)
	assert.Equal(t, purchaseRepo.Purchases[0].ProductID, purchaseRepo.Purchases[1].ProductID)
}

func TestRecordPurchaseValidatesBeforePersisting(t *testing.T) {
	testCases := []struct {
		name        string
		productName string
		price       float64
		expectedErr error
	}{
		{name: "empty name", productName: "", price: 1.0, expectedErr: ErrEmptyProductName},
		{name: "whitespace-only name", productName: "   ", price: 1.0, expectedErr: ErrEmptyProductName},
		{name: "zero price", productName: "pomme", price: 0, expectedErr: ErrInvalidPrice},
		{name: "negative price", productName: "pomme", price: -2.5, expectedErr: ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			productRepo := NewMockProductRepo()
			purchaseRepo := NewMockPurchaseRepo()
			svc := NewPurchaseService(productRepo, purchaseRepo)

			_, err := svc.RecordPurchase(context.Background(), tc.productName, tc.price, nil)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Equal(t, 0, productRepo.CreatedCount, "no product row may be written")
			assert.Len(t, purchaseRepo.Purchases, 0, "no purchase row may be written")
		})
	}
}

func TestRecordPurchaseTrimsProductName(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	svc := NewPurchaseService(productRepo, purchaseRepo)

	view, err := svc.RecordPurchase(context.Background(), "  pomme  ", 2.50, nil)

	assert.NoError(t, err)
	assert.Equal(t, "pomme", view.ProductName)

	_, ok := productRepo.Products["pomme"]
	assert.True(t, ok)
}

func TestRecordPurchaseDefaultsDateToServiceClock(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	svc := NewPurchaseService(productRepo, purchaseRepo)

	frozen := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	view, err := svc.RecordPurchase(context.Background(), "pomme", 2.50, nil)

	assert.NoError(t, err)
	assert.Equal(t, frozen, view.PurchaseDate)
	assert.Equal(t, frozen, purchaseRepo.Purchases[0].PurchaseDate)
}

func TestRecordPurchaseKeepsExplicitDate(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	svc := NewPurchaseService(productRepo, purchaseRepo)

	given := time.Date(2023, 12, 24, 18, 0, 0, 0, time.UTC)

	view, err := svc.RecordPurchase(context.Background(), "pomme", 2.50, &given)

	assert.NoError(t, err)
	assert.Equal(t, given, view.PurchaseDate)
}

func TestRecordPurchaseRetriesLookupOnDuplicateRace(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	svc := NewPurchaseService(productRepo, purchaseRepo)

	// Simulate losing the insert race: the create fails with a unique
	// violation while a concurrent writer has already persisted the row.
	productRepo.CreateErr = postgres.ErrDuplicateProductName
	productRepo.CreateErrOnce = true
	productRepo.Products["pomme"] = domain.Product{ID: 42, Name: "pomme"}

	view, err := svc.RecordPurchase(context.Background(), "pomme", 2.50, nil)

	assert.NoError(t, err)
	assert.Equal(t, uint64(42), view.ProductID)
	assert.Len(t, purchaseRepo.Purchases, 1)
}

func TestRecordPurchasePropagatesRepositoryError(t *testing.T) {
	productRepo := NewMockProductRepo()
	purchaseRepo := NewMockPurchaseRepo()
	purchaseRepo.CreateErr = errors.New("db down")
	svc := NewPurchaseService(productRepo, purchaseRepo)

	_, err := svc.RecordPurchase(context.Background(), "pomme", 2.50, nil)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyProductName)
	assert.NotErrorIs(t, err, ErrInvalidPrice)
}
