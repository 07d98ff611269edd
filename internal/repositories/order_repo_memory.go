package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"grosir/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of
// OrderRepository. Orders are kept in a slice with the newest at the
// head, matching how the order history is displayed.
type MemoryOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// GetAll returns all orders, most recent first.
func (r *MemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// GetByID returns an order by its ID.
func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
}

// Create prepends a new order to the history.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			return fmt.Errorf("order with ID %s already exists", order.ID)
		}
	}
	r.orders = append([]models.Order{*order}, r.orders...)
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MemoryOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
}

// SetTracking records the tracking number and estimated delivery date.
func (r *MemoryOrderRepository) SetTracking(id, trackingNumber, estimatedDelivery string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].TrackingNumber = trackingNumber
			r.orders[i].EstimatedDelivery = estimatedDelivery
			return nil
		}
	}
	return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
}
