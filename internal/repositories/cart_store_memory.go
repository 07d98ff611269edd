package repositories

import (
	"sync"

	"grosir/internal/models"
)

// MemoryCartStore holds the per-customer carts. Carts are stored and
// returned by value so callers never share item slices with the store.
type MemoryCartStore struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMemoryCartStore creates a new instance of MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]models.Cart),
	}
}

// Get returns the customer's cart, empty if they have none yet.
func (s *MemoryCartStore) Get(customerID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[customerID]
	if !ok {
		return models.Cart{CustomerID: customerID}
	}
	return copyCart(cart)
}

// Save stores the cart, replacing whatever was there.
func (s *MemoryCartStore) Save(cart models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.CustomerID] = copyCart(cart)
}

// Clear removes the customer's cart.
func (s *MemoryCartStore) Clear(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
}

func copyCart(cart models.Cart) models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}
