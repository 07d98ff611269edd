package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/internal/seed"
	"grosir/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// MockInventoryRepository is a mock implementation of repositories.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetAll() ([]models.InventoryRecord, error) {
	args := m.Called()
	return args.Get(0).([]models.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) GetByProductName(name string) (*models.InventoryRecord, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryRecord), args.Error(1)
}

func flourProduct() models.Product {
	return models.Product{
		ID: "PROD001", Name: "Organic Whole Wheat Flour", Category: "Bakery & Grains", BasePrice: 28.5,
		Tiers: []models.PriceTier{
			{MinQuantity: 1, MaxQuantity: 10, Price: 28.5},
			{MinQuantity: 11, MaxQuantity: 50, Price: 26.75},
			{MinQuantity: 51, Price: 24.9},
		},
	}
}

func TestCatalogService_ResolveTier(t *testing.T) {
	service := services.NewCatalogService(new(MockProductRepository), new(MockInventoryRepository))
	product := flourProduct()

	// Boundary between the first two tiers.
	tier, err := service.ResolveTier(&product, 10)
	require.NoError(t, err)
	assert.Equal(t, 28.5, tier.Price)

	tier, err = service.ResolveTier(&product, 11)
	require.NoError(t, err)
	assert.Equal(t, 26.75, tier.Price)

	// Unbounded top tier.
	tier, err = service.ResolveTier(&product, 5000)
	require.NoError(t, err)
	assert.Equal(t, 24.9, tier.Price)

	// Non-positive quantities are rejected.
	for _, qty := range []int{0, -1, -50} {
		_, err = service.ResolveTier(&product, qty)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity, "quantity %d", qty)
	}
}

// TestCatalogService_TierPartition checks that for every seeded product
// each quantity up to a large bound is covered by exactly one tier.
func TestCatalogService_TierPartition(t *testing.T) {
	service := services.NewCatalogService(new(MockProductRepository), new(MockInventoryRepository))

	for _, product := range seed.Products() {
		require.NoError(t, product.ValidateTiers(), "product %s", product.ID)

		for qty := 1; qty <= 500; qty++ {
			matches := 0
			for _, tier := range product.Tiers {
				if tier.Contains(qty) {
					matches++
				}
			}
			require.Equal(t, 1, matches, "product %s quantity %d covered by %d tiers", product.ID, qty, matches)

			tier, err := service.ResolveTier(&product, qty)
			require.NoError(t, err)
			assert.True(t, tier.Contains(qty))
		}
	}
}

func TestCatalogService_DefaultTier(t *testing.T) {
	service := services.NewCatalogService(new(MockProductRepository), new(MockInventoryRepository))
	product := flourProduct()

	tier, err := service.DefaultTier(&product)
	require.NoError(t, err)
	assert.Equal(t, 1, tier.MinQuantity)
	assert.Equal(t, 28.5, tier.Price)

	empty := models.Product{ID: "PROD-EMPTY"}
	_, err = service.DefaultTier(&empty)
	assert.Error(t, err)
}

func TestCatalogService_SavingsPerUnit(t *testing.T) {
	service := services.NewCatalogService(new(MockProductRepository), new(MockInventoryRepository))
	product := flourProduct()

	assert.Equal(t, 0.0, service.SavingsPerUnit(&product, &product.Tiers[0]))
	assert.InDelta(t, 1.75, service.SavingsPerUnit(&product, &product.Tiers[1]), 1e-9)

	// Savings never go negative, even for a tier priced above base.
	expensive := models.PriceTier{MinQuantity: 1, Price: 99.0}
	assert.Equal(t, 0.0, service.SavingsPerUnit(&product, &expensive))

	for _, p := range seed.Products() {
		for i := range p.Tiers {
			assert.GreaterOrEqual(t, service.SavingsPerUnit(&p, &p.Tiers[i]), 0.0)
		}
	}
}

func TestCatalogService_Search(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockInventoryRepository))

	catalog := []models.Product{
		{ID: "PROD001", Name: "Organic Whole Wheat Flour", Category: "Bakery & Grains"},
		{ID: "PROD002", Name: "Roasted Coffee Beans", Category: "Beverages"},
		{ID: "PROD010", Name: "Green Tea Leaves", Category: "Beverages"},
	}
	mockRepo.On("GetAll").Return(catalog, nil)

	// Case-insensitive name match.
	results, err := service.Search("coffee")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "PROD002", results[0].ID)

	// Category match preserves catalog order.
	results, err = service.Search("beverages")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "PROD002", results[0].ID)
	assert.Equal(t, "PROD010", results[1].ID)

	// ID match.
	results, err = service.Search("prod010")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Empty term matches everything.
	results, err = service.Search("")
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// No match.
	results, err = service.Search("anchovies")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCatalogService_InventoryStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minStock int
		want     models.StockLevel
	}{
		{"at minimum stock", 200, 200, models.StockCritical},
		{"below minimum stock", 150, 200, models.StockCritical},
		{"under 20 percent buffer", 230, 200, models.StockLow},
		{"under 50 percent buffer", 280, 200, models.StockModerate},
		{"healthy buffer", 300, 200, models.StockGood},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockInventory := new(MockInventoryRepository)
			service := services.NewCatalogService(new(MockProductRepository), mockInventory)

			product := flourProduct()
			mockInventory.On("GetByProductName", product.Name).Return(&models.InventoryRecord{
				ProductName: product.Name,
				Quantity:    tc.quantity,
				MinStock:    tc.minStock,
			}, nil).Once()

			level, err := service.InventoryStatus(&product)
			require.NoError(t, err)
			assert.Equal(t, tc.want, level)
			mockInventory.AssertExpectations(t)
		})
	}

	t.Run("missing record defaults to Good", func(t *testing.T) {
		mockInventory := new(MockInventoryRepository)
		service := services.NewCatalogService(new(MockProductRepository), mockInventory)

		product := flourProduct()
		mockInventory.On("GetByProductName", product.Name).
			Return(nil, fmt.Errorf("inventory record for %q: %w", product.Name, repositories.ErrNotFound)).Once()

		level, err := service.InventoryStatus(&product)
		require.NoError(t, err)
		assert.Equal(t, models.StockGood, level)
	})
}
