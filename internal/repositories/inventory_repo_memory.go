package repositories

import (
	"fmt"
	"sync"

	"grosir/internal/models"
)

// MemoryInventoryRepository is an in-memory implementation of
// InventoryRepository, fed once at startup from the warehouse snapshot.
type MemoryInventoryRepository struct {
	records []models.InventoryRecord
	byName  map[string]int
	mu      sync.RWMutex
}

// NewMemoryInventoryRepository creates a repository seeded with the given records.
func NewMemoryInventoryRepository(records []models.InventoryRecord) *MemoryInventoryRepository {
	byName := make(map[string]int, len(records))
	for i, rec := range records {
		byName[rec.ProductName] = i
	}
	return &MemoryInventoryRepository{
		records: records,
		byName:  byName,
	}
}

// GetAll returns all inventory records.
func (r *MemoryInventoryRepository) GetAll() ([]models.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.InventoryRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// GetByProductName returns the record for a product name, if any.
func (r *MemoryInventoryRepository) GetByProductName(name string) (*models.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("inventory record for %q: %w", name, ErrNotFound)
	}
	rec := r.records[i]
	return &rec, nil
}
