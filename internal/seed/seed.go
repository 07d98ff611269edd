// Package seed holds the demo dataset the portal boots with: the static
// wholesale catalog, the customer accounts, the warehouse snapshot and a
// couple of historical orders.
package seed

import (
	"grosir/internal/models"
	"grosir/internal/services"
)

// Products returns the demo catalog. Tier bands per product partition
// 1..infinity; the last tier of each product is unbounded.
func Products() []models.Product {
	return []models.Product{
		{
			ID: "PROD001", Name: "Organic Whole Wheat Flour", Category: "Bakery & Grains", BasePrice: 28.5,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 10, Price: 28.5, DiscountPercent: 0},
				{MinQuantity: 11, MaxQuantity: 50, Price: 26.75, DiscountPercent: 6.1},
				{MinQuantity: 51, MaxQuantity: 100, Price: 24.9, DiscountPercent: 12.6},
				{MinQuantity: 101, Price: 23.25, DiscountPercent: 18.4},
			},
			Image: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=400&q=80",
		},
		{
			ID: "PROD002", Name: "Roasted Coffee Beans", Category: "Beverages", BasePrice: 45.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 5, Price: 45.0, DiscountPercent: 0},
				{MinQuantity: 6, MaxQuantity: 20, Price: 42.3, DiscountPercent: 6.0},
				{MinQuantity: 21, MaxQuantity: 50, Price: 39.6, DiscountPercent: 12.0},
				{MinQuantity: 51, Price: 36.9, DiscountPercent: 18.0},
			},
			Image: "https://images.unsplash.com/photo-1511920170033-f8396924c348?auto=format&fit=crop&w=400&q=80",
		},
		{
			ID: "PROD003", Name: "Premium Granola", Category: "Snacks", BasePrice: 32.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 10, Price: 32.0, DiscountPercent: 0},
				{MinQuantity: 11, MaxQuantity: 30, Price: 30.1, DiscountPercent: 5.9},
				{MinQuantity: 31, MaxQuantity: 60, Price: 28.2, DiscountPercent: 11.9},
				{MinQuantity: 61, Price: 26.2, DiscountPercent: 18.1},
			},
			Image: "https://images.unsplash.com/photo-1502741338009-cac2772e18bc?auto=format&fit=crop&w=400&q=80",
		},
		{
			ID: "PROD004", Name: "Artisanal Honey", Category: "Jams & Spreads", BasePrice: 55.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 5, Price: 55.0, DiscountPercent: 0},
				{MinQuantity: 6, MaxQuantity: 15, Price: 51.7, DiscountPercent: 6.0},
				{MinQuantity: 16, MaxQuantity: 30, Price: 48.4, DiscountPercent: 12.0},
				{MinQuantity: 31, Price: 45.1, DiscountPercent: 18.0},
			},
			Image: "https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=400&q=80",
		},
		{
			ID: "PROD005", Name: "Organic Almond Milk", Category: "Dairy Alternatives", BasePrice: 22.5,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 20, Price: 22.5, DiscountPercent: 0},
				{MinQuantity: 21, MaxQuantity: 50, Price: 21.15, DiscountPercent: 6.0},
				{MinQuantity: 51, MaxQuantity: 100, Price: 19.8, DiscountPercent: 12.0},
				{MinQuantity: 101, Price: 18.45, DiscountPercent: 18.0},
			},
		},
		{
			ID: "PROD006", Name: "Spelt Pasta", Category: "Pasta & Grains", BasePrice: 30.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 10, Price: 30.0, DiscountPercent: 0},
				{MinQuantity: 11, MaxQuantity: 30, Price: 28.2, DiscountPercent: 6.0},
				{MinQuantity: 31, MaxQuantity: 60, Price: 26.4, DiscountPercent: 12.0},
				{MinQuantity: 61, Price: 24.6, DiscountPercent: 18.0},
			},
		},
		{
			ID: "PROD007", Name: "Dark Chocolate Chips", Category: "Baking Ingredients", BasePrice: 38.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 5, Price: 38.0, DiscountPercent: 0},
				{MinQuantity: 6, MaxQuantity: 20, Price: 35.7, DiscountPercent: 6.1},
				{MinQuantity: 21, MaxQuantity: 50, Price: 33.4, DiscountPercent: 12.1},
				{MinQuantity: 51, Price: 31.1, DiscountPercent: 18.2},
			},
		},
		{
			ID: "PROD008", Name: "Organic Coconut Oil", Category: "Oils & Fats", BasePrice: 42.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 10, Price: 42.0, DiscountPercent: 0},
				{MinQuantity: 11, MaxQuantity: 25, Price: 39.5, DiscountPercent: 6.0},
				{MinQuantity: 26, MaxQuantity: 50, Price: 37.0, DiscountPercent: 11.9},
				{MinQuantity: 51, Price: 34.4, DiscountPercent: 18.1},
			},
		},
		{
			ID: "PROD009", Name: "Quinoa Seeds", Category: "Grains & Seeds", BasePrice: 35.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 10, Price: 35.0, DiscountPercent: 0},
				{MinQuantity: 11, MaxQuantity: 30, Price: 32.9, DiscountPercent: 6.0},
				{MinQuantity: 31, MaxQuantity: 60, Price: 30.8, DiscountPercent: 12.0},
				{MinQuantity: 61, Price: 28.7, DiscountPercent: 18.0},
			},
		},
		{
			ID: "PROD010", Name: "Green Tea Leaves", Category: "Beverages", BasePrice: 28.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 15, Price: 28.0, DiscountPercent: 0},
				{MinQuantity: 16, MaxQuantity: 40, Price: 26.3, DiscountPercent: 6.1},
				{MinQuantity: 41, MaxQuantity: 80, Price: 24.6, DiscountPercent: 12.1},
				{MinQuantity: 81, Price: 22.9, DiscountPercent: 18.2},
			},
		},
		{
			ID: "PROD011", Name: "Mixed Nuts Premium", Category: "Snacks", BasePrice: 48.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 8, Price: 48.0, DiscountPercent: 0},
				{MinQuantity: 9, MaxQuantity: 25, Price: 45.1, DiscountPercent: 6.0},
				{MinQuantity: 26, MaxQuantity: 50, Price: 42.2, DiscountPercent: 12.1},
				{MinQuantity: 51, Price: 39.3, DiscountPercent: 18.1},
			},
		},
		{
			ID: "PROD012", Name: "Organic Maple Syrup", Category: "Sweeteners", BasePrice: 65.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 5, Price: 65.0, DiscountPercent: 0},
				{MinQuantity: 6, MaxQuantity: 15, Price: 61.1, DiscountPercent: 6.0},
				{MinQuantity: 16, MaxQuantity: 30, Price: 57.2, DiscountPercent: 12.0},
				{MinQuantity: 31, Price: 53.3, DiscountPercent: 18.0},
			},
		},
		{
			ID: "PROD013", Name: "Chia Seeds", Category: "Grains & Seeds", BasePrice: 32.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 12, Price: 32.0, DiscountPercent: 0},
				{MinQuantity: 13, MaxQuantity: 35, Price: 30.1, DiscountPercent: 5.9},
				{MinQuantity: 36, MaxQuantity: 70, Price: 28.2, DiscountPercent: 11.9},
				{MinQuantity: 71, Price: 26.2, DiscountPercent: 18.1},
			},
		},
		{
			ID: "PROD014", Name: "Vanilla Extract", Category: "Baking Ingredients", BasePrice: 55.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 8, Price: 55.0, DiscountPercent: 0},
				{MinQuantity: 9, MaxQuantity: 20, Price: 51.7, DiscountPercent: 6.0},
				{MinQuantity: 21, MaxQuantity: 40, Price: 48.4, DiscountPercent: 12.0},
				{MinQuantity: 41, Price: 45.1, DiscountPercent: 18.0},
			},
		},
		{
			ID: "PROD015", Name: "Dried Cranberries", Category: "Snacks", BasePrice: 26.0,
			Tiers: []models.PriceTier{
				{MinQuantity: 1, MaxQuantity: 15, Price: 26.0, DiscountPercent: 0},
				{MinQuantity: 16, MaxQuantity: 40, Price: 24.4, DiscountPercent: 6.2},
				{MinQuantity: 41, MaxQuantity: 80, Price: 22.9, DiscountPercent: 11.9},
				{MinQuantity: 81, Price: 21.3, DiscountPercent: 18.1},
			},
		},
	}
}

// Customers returns the demo customer accounts.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID: "CUST001", Name: "Green Valley Bakery",
			CreditLimit: 10000, CurrentBalance: 3500,
			PaymentDueDate: "2025-03-25", Status: models.AccountStatusActive,
		},
		{
			ID: "CUST002", Name: "Sunset Coffee Roasters",
			CreditLimit: 7500, CurrentBalance: 2200,
			PaymentDueDate: "2025-03-30", Status: models.AccountStatusActive,
		},
	}
}

// Inventory returns the warehouse snapshot. Names are warehouse labels;
// only some of them line up with catalog product names, the rest of the
// catalog reports as in stock.
func Inventory() []models.InventoryRecord {
	return []models.InventoryRecord{
		{ProductName: "Organic Flour", Quantity: 1500, MinStock: 200, Category: "Bakery & Grains"},
		{ProductName: "Coffee Beans", Quantity: 800, MinStock: 150, Category: "Beverages"},
		{ProductName: "Granola", Quantity: 300, MinStock: 100, Category: "Snacks"},
		{ProductName: "Artisanal Honey", Quantity: 500, MinStock: 80, Category: "Jams & Spreads"},
		{ProductName: "Almond Milk", Quantity: 1200, MinStock: 300, Category: "Dairy Alternatives"},
		{ProductName: "Spelt Pasta", Quantity: 600, MinStock: 150, Category: "Pasta & Grains"},
	}
}

// Orders returns two historical orders so the portal does not boot with
// an empty history. Totals are derived from the tier prices.
func Orders() []models.Order {
	flour := order(
		"ORD001", "2025-03-15", models.OrderStatusProcessing,
		models.OrderItem{ProductID: "PROD001", ProductName: "Organic Whole Wheat Flour", UnitPrice: 26.75, Quantity: 20},
		models.OrderItem{ProductID: "PROD003", ProductName: "Premium Granola", UnitPrice: 32.0, Quantity: 5},
	)
	coffee := order(
		"ORD002", "2025-03-10", models.OrderStatusInTransit,
		models.OrderItem{ProductID: "PROD002", ProductName: "Roasted Coffee Beans", UnitPrice: 39.6, Quantity: 30},
		models.OrderItem{ProductID: "PROD004", ProductName: "Artisanal Honey", UnitPrice: 55.0, Quantity: 3},
	)
	coffee.TrackingNumber = "UPS-4536271890"
	coffee.EstimatedDelivery = "2025-03-18"

	// Oldest first, so creating them in sequence leaves the newest at
	// the head of the history.
	return []models.Order{coffee, flour}
}

func order(id, date string, status models.OrderStatus, items ...models.OrderItem) models.Order {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	tax := subtotal * services.TaxRate
	return models.Order{
		ID:       id,
		Date:     date,
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Status:   status,
	}
}
