package services

import (
	"fmt"
	"strings"

	"grosir/internal/models"
	"grosir/internal/repositories"
)

// OrderService handles business logic related to the order history and
// fulfillment status updates.
type OrderService struct {
	orders repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repositories.OrderRepository) *OrderService {
	return &OrderService{
		orders: orders,
	}
}

// GetAllOrders retrieves all orders, most recent first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orders.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orders.GetByID(id)
}

// SearchOrders filters the history by a case-insensitive substring match
// against order ID, status and date. An empty term matches everything.
func (s *OrderService) SearchOrders(term string) ([]models.Order, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return orders, nil
	}

	needle := strings.ToLower(term)
	matched := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if strings.Contains(strings.ToLower(order.ID), needle) ||
			strings.Contains(strings.ToLower(string(order.Status)), needle) ||
			strings.Contains(order.Date, needle) {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

// UpdateOrderStatus moves an order along the fulfillment graph. The
// move must be a declared status and a legal transition from the
// order's current state.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	order, err := s.orders.GetByID(id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s cannot move to %s", ErrInvalidTransition, order.Status, status)
	}
	return s.orders.UpdateStatus(id, status)
}

// SetTracking records shipment metadata from the carrier.
func (s *OrderService) SetTracking(id, trackingNumber, estimatedDelivery string) error {
	if _, err := s.orders.GetByID(id); err != nil {
		return err
	}
	return s.orders.SetTracking(id, trackingNumber, estimatedDelivery)
}

// CountByStatus tallies the history per fulfillment status.
func (s *OrderService) CountByStatus() (map[models.OrderStatus]int, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	counts := make(map[models.OrderStatus]int)
	for _, order := range orders {
		counts[order.Status]++
	}
	return counts, nil
}
