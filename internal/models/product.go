package models

import "fmt"

// PriceTier is a quantity band with the unit price that applies inside it.
// MaxQuantity == 0 means the band is unbounded above.
type PriceTier struct {
	ID              uint    `json:"-" gorm:"primaryKey"`
	ProductID       string  `json:"-" gorm:"index;type:varchar(36)"`
	MinQuantity     int     `json:"min_quantity" validate:"gte=1"`
	MaxQuantity     int     `json:"max_quantity" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0"`
}

// Contains reports whether qty falls inside this tier's quantity band.
func (t PriceTier) Contains(qty int) bool {
	if qty < t.MinQuantity {
		return false
	}
	return t.MaxQuantity == 0 || qty <= t.MaxQuantity
}

// Unbounded reports whether the tier has no upper quantity limit.
func (t PriceTier) Unbounded() bool {
	return t.MaxQuantity == 0
}

// Product is a catalog entry with tiered wholesale pricing.
// Products are immutable once the catalog is loaded.
type Product struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required,max=36"`
	Name      string      `json:"name" validate:"required,min=3,max=100"`
	Category  string      `json:"category" validate:"required,max=100"`
	BasePrice float64     `json:"base_price" validate:"gte=0"`
	Tiers     []PriceTier `json:"tier_prices" gorm:"foreignKey:ProductID" validate:"required,min=1,dive"`
	Image     string      `json:"image" validate:"omitempty,url"`
}

// ValidateTiers checks that the product's tiers partition the positive
// integers: ascending, starting at 1, no gaps or overlaps, the last tier
// unbounded, and unit prices non-increasing as quantity grows.
func (p *Product) ValidateTiers() error {
	if len(p.Tiers) == 0 {
		return fmt.Errorf("product %s has no price tiers", p.ID)
	}
	if p.Tiers[0].MinQuantity != 1 {
		return fmt.Errorf("product %s: first tier must start at quantity 1, got %d", p.ID, p.Tiers[0].MinQuantity)
	}
	for i, tier := range p.Tiers {
		if i == len(p.Tiers)-1 {
			if !tier.Unbounded() {
				return fmt.Errorf("product %s: last tier must be unbounded, got max %d", p.ID, tier.MaxQuantity)
			}
		} else {
			if tier.Unbounded() {
				return fmt.Errorf("product %s: only the last tier may be unbounded", p.ID)
			}
			if tier.MaxQuantity < tier.MinQuantity {
				return fmt.Errorf("product %s: tier %d has max %d below min %d", p.ID, i, tier.MaxQuantity, tier.MinQuantity)
			}
			if next := p.Tiers[i+1]; next.MinQuantity != tier.MaxQuantity+1 {
				return fmt.Errorf("product %s: tier %d ends at %d but next starts at %d", p.ID, i, tier.MaxQuantity, next.MinQuantity)
			}
		}
		if i > 0 && tier.Price > p.Tiers[i-1].Price {
			return fmt.Errorf("product %s: tier price rises from %.2f to %.2f at quantity %d", p.ID, p.Tiers[i-1].Price, tier.Price, tier.MinQuantity)
		}
	}
	return nil
}
