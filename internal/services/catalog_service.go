package services

import (
	"errors"
	"fmt"
	"strings"

	"grosir/internal/models"
	"grosir/internal/repositories"
)

// CatalogService handles business logic related to the product catalog:
// tier resolution, savings, search and stock health.
type CatalogService struct {
	products  repositories.ProductRepository
	inventory repositories.InventoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products repositories.ProductRepository, inventory repositories.InventoryRepository) *CatalogService {
	return &CatalogService{
		products:  products,
		inventory: inventory,
	}
}

// GetAllProducts retrieves all products in catalog order.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.products.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.products.GetByID(id)
}

// ResolveTier returns the unique tier whose quantity band contains qty.
// The tiers partition 1..infinity, so exactly one tier matches any
// quantity >= 1.
func (s *CatalogService) ResolveTier(product *models.Product, qty int) (*models.PriceTier, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity %d must be at least 1", ErrInvalidQuantity, qty)
	}
	for i := range product.Tiers {
		if product.Tiers[i].Contains(qty) {
			return &product.Tiers[i], nil
		}
	}
	// Unreachable for a catalog that passed ValidateTiers.
	return nil, fmt.Errorf("%w: no tier of product %s covers quantity %d", ErrInvalidQuantity, product.ID, qty)
}

// DefaultTier returns the first (lowest-quantity) tier, used when a
// product is added to a cart without an explicit quantity.
func (s *CatalogService) DefaultTier(product *models.Product) (*models.PriceTier, error) {
	if len(product.Tiers) == 0 {
		return nil, fmt.Errorf("product %s has no price tiers", product.ID)
	}
	return &product.Tiers[0], nil
}

// SavingsPerUnit is how much cheaper the tier is than the base price.
// Never negative.
func (s *CatalogService) SavingsPerUnit(product *models.Product, tier *models.PriceTier) float64 {
	savings := product.BasePrice - tier.Price
	if savings < 0 {
		return 0
	}
	return savings
}

// Search filters the catalog by a case-insensitive substring match
// against name, category and ID, preserving catalog order. An empty
// term matches everything.
func (s *CatalogService) Search(term string) ([]models.Product, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return products, nil
	}

	needle := strings.ToLower(term)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) ||
			strings.Contains(strings.ToLower(p.ID), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// InventoryStatus derives the stock-health label for a product from the
// warehouse record: at or below minimum stock is Critical, then Low and
// Moderate as the buffer over minimum grows. Products without a record
// are reported Good.
func (s *CatalogService) InventoryStatus(product *models.Product) (models.StockLevel, error) {
	record, err := s.inventory.GetByProductName(product.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.StockGood, nil
		}
		return "", err
	}

	if record.Quantity <= record.MinStock {
		return models.StockCritical, nil
	}
	bufferPercent := float64(record.Quantity-record.MinStock) / float64(record.MinStock) * 100
	switch {
	case bufferPercent < 20:
		return models.StockLow, nil
	case bufferPercent < 50:
		return models.StockModerate, nil
	default:
		return models.StockGood, nil
	}
}
