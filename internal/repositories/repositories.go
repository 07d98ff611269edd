package repositories

import (
	"errors"

	"grosir/internal/models"
)

// ErrNotFound is wrapped by every repository when a lookup misses.
var ErrNotFound = errors.New("not found")

// ProductRepository defines the interface for catalog data access.
// Implementations must preserve catalog insertion order in GetAll.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}

// OrderRepository defines the interface for order history access.
// GetAll returns orders most recent first; Create inserts at the head.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	SetTracking(id, trackingNumber, estimatedDelivery string) error
}

// CustomerRepository defines the interface for customer account access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id string) (*models.Customer, error)
	Update(customer *models.Customer) error
}

// InventoryRepository exposes the warehouse stock records, keyed by
// product name the way the fulfillment feed delivers them.
type InventoryRepository interface {
	GetAll() ([]models.InventoryRecord, error)
	GetByProductName(name string) (*models.InventoryRecord, error)
}

// CartStore owns the per-customer carts. It is the single place cart
// state lives; services read a copy, mutate it, and save it back.
type CartStore interface {
	Get(customerID string) models.Cart
	Save(cart models.Cart)
	Clear(customerID string)
}
