package repositories

import (
	"fmt"
	"sync"

	"grosir/internal/models"
)

// MemoryCustomerRepository is an in-memory implementation of
// CustomerRepository.
type MemoryCustomerRepository struct {
	customers map[string]models.Customer
	mu        sync.RWMutex
}

// NewMemoryCustomerRepository creates a new instance of MemoryCustomerRepository.
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		customers: make(map[string]models.Customer),
	}
}

// GetAll returns all customers.
func (r *MemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

// GetByID returns a customer by their ID.
func (r *MemoryCustomerRepository) GetByID(id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer with ID %s: %w", id, ErrNotFound)
	}
	return &customer, nil
}

// Update replaces a customer record. The record must already exist.
func (r *MemoryCustomerRepository) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.ID]; !ok {
		return fmt.Errorf("customer with ID %s: %w", customer.ID, ErrNotFound)
	}
	r.customers[customer.ID] = *customer
	return nil
}

// Seed inserts a customer without the existence check, for startup loading.
func (r *MemoryCustomerRepository) Seed(customer models.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = customer
}
