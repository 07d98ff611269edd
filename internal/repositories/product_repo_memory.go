package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"grosir/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It keeps a slice alongside the index map so GetAll
// returns products in catalog order.
type MemoryProductRepository struct {
	products []models.Product
	index    map[string]int
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		index: make(map[string]int),
	}
}

// GetAll returns all products in catalog order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product := r.products[i]
	return &product, nil
}

// Create appends a new product to the catalog.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, exists := r.index[product.ID]; exists {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}
