package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/internal/seed"
	"grosir/internal/services"
)

func TestDashboardService_Summary(t *testing.T) {
	productRepo := repositories.NewMemoryProductRepository()
	for _, product := range seed.Products() {
		require.NoError(t, productRepo.Create(&product))
	}

	orderRepo := repositories.NewMemoryOrderRepository()
	for _, order := range []models.Order{
		{ID: "ORD002", Date: "2025-03-10", Status: models.OrderStatusInTransit, Total: 1000},
		{ID: "ORD001", Date: "2025-03-15", Status: models.OrderStatusProcessing, Total: 500},
		{ID: "ORD003", Date: "2025-04-02", Status: models.OrderStatusDelivered, Total: 250},
	} {
		require.NoError(t, orderRepo.Create(&order))
	}

	customerRepo := repositories.NewMemoryCustomerRepository()
	customerRepo.Seed(models.Customer{
		ID: "CUST001", Name: "Green Valley Bakery",
		CreditLimit: 10000, CurrentBalance: 3500,
		PaymentDueDate: "2025-03-25", Status: models.AccountStatusActive,
	})

	inventoryRepo := repositories.NewMemoryInventoryRepository([]models.InventoryRecord{
		// Granola is 10% over minimum stock: Low.
		{ProductName: "Premium Granola", Quantity: 110, MinStock: 100},
		// Honey is at minimum stock: Critical.
		{ProductName: "Artisanal Honey", Quantity: 80, MinStock: 80},
	})

	catalog := services.NewCatalogService(productRepo, inventoryRepo)
	cart := services.NewCartService(repositories.NewMemoryCartStore(), productRepo, orderRepo, catalog, nil)
	orders := services.NewOrderService(orderRepo)
	dashboard := services.NewDashboardService(customerRepo, orders, catalog, cart)

	_, err := cart.AddItem("CUST001", "PROD001", 1) // 28.50 + 8% tax
	require.NoError(t, err)

	summary, err := dashboard.Summary("CUST001")
	require.NoError(t, err)

	assert.Equal(t, "Green Valley Bakery", summary.CustomerName)
	assert.Equal(t, 3500.0, summary.CurrentBalance)
	assert.Equal(t, 6500.0, summary.AvailableCredit)
	assert.InDelta(t, 28.50*1.08, summary.PendingCartTotal, 1e-9)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 1, summary.OrdersByStatus[models.OrderStatusProcessing])
	assert.Equal(t, 15, summary.ProductCount)
	assert.Equal(t, 2, summary.LowStockCount)

	require.Len(t, summary.MonthlySales, 2)
	assert.Equal(t, services.MonthlySales{Month: "2025-03", Sales: 1500}, summary.MonthlySales[0])
	assert.Equal(t, services.MonthlySales{Month: "2025-04", Sales: 250}, summary.MonthlySales[1])

	_, err = dashboard.Summary("CUST999")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
