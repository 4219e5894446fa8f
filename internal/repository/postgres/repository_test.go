package postgres

import (
	"context"
	"testing"
	"time"

	"familyGrocery/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Category{}, &domain.Product{}, &domain.Purchase{}))

	return db
}

func TestProductRepositoryFindByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	_, err := repo.FindByName(ctx, "pomme")
	assert.ErrorIs(t, err, ErrProductNotFound)

	created := &domain.Product{Name: "pomme"}
	require.NoError(t, repo.Create(ctx, created))
	assert.NotZero(t, created.ID)

	found, err := repo.FindByName(ctx, "pomme")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Exact match only
	_, err = repo.FindByName(ctx, "Pomme")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRepositoryUniqueName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Product{Name: "pomme"}))

	err := repo.Create(ctx, &domain.Product{Name: "pomme"})
	assert.ErrorIs(t, err, ErrDuplicateProductName)
}

func TestPurchaseRepositoryListOrderedByDateDesc(t *testing.T) {
	db := setupTestDB(t)
	productRepo := NewProductRepository(db)
	purchaseRepo := NewPurchaseRepository(db)
	ctx := context.Background()

	product := &domain.Product{Name: "pomme"}
	require.NoError(t, productRepo.Create(ctx, product))

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t2.Add(24 * time.Hour)

	for _, at := range []time.Time{t1, t3, t2} {
		require.NoError(t, purchaseRepo.Create(ctx, &domain.Purchase{
			ProductID:    product.ID,
			Price:        1.0,
			Quantity:     1,
			PurchaseDate: at,
		}))
	}

	views, err := purchaseRepo.FindAllWithProduct(ctx)
	assert.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, t3, views[0].PurchaseDate.UTC())
	assert.Equal(t, t2, views[1].PurchaseDate.UTC())
	assert.Equal(t, t1, views[2].PurchaseDate.UTC())
	assert.Equal(t, "pomme", views[0].ProductName)
}

func TestPurchaseRepositoryPeriodBounds(t *testing.T) {
	db := setupTestDB(t)
	productRepo := NewProductRepository(db)
	purchaseRepo := NewPurchaseRepository(db)
	ctx := context.Background()

	pomme := &domain.Product{Name: "pomme"}
	poire := &domain.Product{Name: "poire"}
	require.NoError(t, productRepo.Create(ctx, pomme))
	require.NoError(t, productRepo.Create(ctx, poire))

	day1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	day5 := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)

	require.NoError(t, purchaseRepo.Create(ctx, &domain.Purchase{ProductID: pomme.ID, Price: 1, Quantity: 1, PurchaseDate: day1}))
	require.NoError(t, purchaseRepo.Create(ctx, &domain.Purchase{ProductID: poire.ID, Price: 1, Quantity: 1, PurchaseDate: day5}))

	day3 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	names, err := purchaseRepo.FindProductNamesInPeriod(ctx, nil, &day3)
	assert.NoError(t, err)
	assert.Equal(t, []string{"pomme"}, names)

	// End bound is inclusive of the whole end day.
	day5Date := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	names, err = purchaseRepo.FindProductNamesInPeriod(ctx, nil, &day5Date)
	assert.NoError(t, err)
	assert.Equal(t, []string{"pomme", "poire"}, names)

	// Start bound is inclusive too.
	names, err = purchaseRepo.FindProductNamesInPeriod(ctx, &day1, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"pomme", "poire"}, names)

	// Unbounded considers everything.
	names, err = purchaseRepo.FindProductNamesInPeriod(ctx, nil, nil)
	assert.NoError(t, err)
	assert.Len(t, names, 2)

	// A period with no purchases is empty, not an error.
	after := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	names, err = purchaseRepo.FindProductNamesInPeriod(ctx, &after, nil)
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestCategoryRepositoryUniqueName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Category{Name: "fruits"}))

	err := repo.Create(ctx, &domain.Category{Name: "fruits"})
	assert.ErrorIs(t, err, ErrDuplicateCategoryName)

	categories, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}
