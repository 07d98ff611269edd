package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/pkg/rabbitmq"
)

// TaxRate is the flat sales tax applied to every order subtotal.
const TaxRate = 0.08

// EventPublisher publishes domain events to the message broker. A nil
// publisher disables event publication.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CartService handles cart mutation, order-total arithmetic and the
// checkout transaction.
type CartService struct {
	carts     repositories.CartStore
	products  repositories.ProductRepository
	orders    repositories.OrderRepository
	catalog   *CatalogService
	publisher EventPublisher
	now       func() time.Time
}

// NewCartService creates a new CartService. publisher may be nil.
func NewCartService(carts repositories.CartStore, products repositories.ProductRepository, orders repositories.OrderRepository, catalog *CatalogService, publisher EventPublisher) *CartService {
	return &CartService{
		carts:     carts,
		products:  products,
		orders:    orders,
		catalog:   catalog,
		publisher: publisher,
		now:       time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *CartService) WithClock(now func() time.Time) *CartService {
	s.now = now
	return s
}

// Get returns the customer's current cart.
func (s *CartService) Get(customerID string) models.Cart {
	return s.carts.Get(customerID)
}

// AddItem appends a new line item to the customer's cart, pricing it at
// the tier covering qty. A repeated add of the same product stays a
// separate row; rows are never merged.
func (s *CartService) AddItem(customerID, productID string, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, fmt.Errorf("%w: quantity %d must be at least 1", ErrInvalidQuantity, qty)
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return models.Cart{}, err
	}
	tier, err := s.catalog.ResolveTier(product, qty)
	if err != nil {
		return models.Cart{}, err
	}
	return s.append(customerID, product, *tier, qty), nil
}

// AddItemWithTier appends a line item priced at an explicitly chosen
// tier of the product, identified by its minimum quantity. The quantity
// does not have to fall inside the tier's band; that is the override.
func (s *CartService) AddItemWithTier(customerID, productID string, tierMinQty, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, fmt.Errorf("%w: quantity %d must be at least 1", ErrInvalidQuantity, qty)
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return models.Cart{}, err
	}
	for i := range product.Tiers {
		if product.Tiers[i].MinQuantity == tierMinQty {
			return s.append(customerID, product, product.Tiers[i], qty), nil
		}
	}
	return models.Cart{}, fmt.Errorf("%w: product %s has no tier starting at quantity %d", ErrInvalidQuantity, productID, tierMinQty)
}

func (s *CartService) append(customerID string, product *models.Product, tier models.PriceTier, qty int) models.Cart {
	cart := s.carts.Get(customerID)
	cart.Items = append(cart.Items, models.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Tier:        tier,
		Quantity:    qty,
	})
	s.carts.Save(cart)
	return cart
}

// RemoveItem deletes the line item at the given position.
func (s *CartService) RemoveItem(customerID string, index int) (models.Cart, error) {
	cart := s.carts.Get(customerID)
	if index < 0 || index >= len(cart.Items) {
		return models.Cart{}, fmt.Errorf("no cart item at index %d", index)
	}
	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	s.carts.Save(cart)
	return cart, nil
}

// Clear empties the customer's cart.
func (s *CartService) Clear(customerID string) {
	s.carts.Clear(customerID)
}

// Subtotal sums tier price times quantity over the cart's line items.
func (s *CartService) Subtotal(cart models.Cart) float64 {
	var subtotal float64
	for _, item := range cart.Items {
		subtotal += item.Tier.Price * float64(item.Quantity)
	}
	return subtotal
}

// Tax applies the flat tax rate to a subtotal.
func (s *CartService) Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Total is subtotal plus tax for the whole cart.
func (s *CartService) Total(cart models.Cart) float64 {
	subtotal := s.Subtotal(cart)
	return subtotal + s.Tax(subtotal)
}

// Checkout snapshots the customer's cart into a new Processing order at
// the head of the history and clears the cart. The order is created and
// the cart cleared as one step, or neither happens.
func (s *CartService) Checkout(customerID string) (*models.Order, error) {
	cart := s.carts.Get(customerID)
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.Tier.Price,
			Quantity:    item.Quantity,
		}
	}

	now := s.now()
	subtotal := s.Subtotal(cart)
	tax := s.Tax(subtotal)
	order := &models.Order{
		ID:       s.nextOrderID(now),
		Date:     now.Format("2006-01-02"),
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Status:   models.OrderStatusProcessing,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.carts.Clear(customerID)

	s.publish("order.created", map[string]interface{}{
		"order_id":    order.ID,
		"customer_id": customerID,
		"status":      order.Status,
		"total":       order.Total,
	})

	return order, nil
}

// nextOrderID derives an order ID from the checkout time, bumping the
// millisecond component until it does not collide with the history.
func (s *CartService) nextOrderID(now time.Time) string {
	base := now.UnixMilli()
	for {
		id := fmt.Sprintf("ORD%d", base)
		if _, err := s.orders.GetByID(id); err != nil {
			return id
		}
		base++
	}
}

func (s *CartService) publish(routingKey string, event map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(rabbitmq.EventsExchange, routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
