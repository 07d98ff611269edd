package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grosir/internal/models"
)

func tieredProduct() models.Product {
	return models.Product{
		ID: "PROD-T", Name: "Test Product", Category: "Test", BasePrice: 28.5,
		Tiers: []models.PriceTier{
			{MinQuantity: 1, MaxQuantity: 10, Price: 28.5},
			{MinQuantity: 11, MaxQuantity: 50, Price: 26.75},
			{MinQuantity: 51, Price: 23.25},
		},
	}
}

func TestPriceTierContains(t *testing.T) {
	bounded := models.PriceTier{MinQuantity: 11, MaxQuantity: 50, Price: 26.75}
	assert.False(t, bounded.Contains(10))
	assert.True(t, bounded.Contains(11))
	assert.True(t, bounded.Contains(50))
	assert.False(t, bounded.Contains(51))

	unbounded := models.PriceTier{MinQuantity: 51, Price: 23.25}
	assert.True(t, unbounded.Unbounded())
	assert.True(t, unbounded.Contains(51))
	assert.True(t, unbounded.Contains(1_000_000))
	assert.False(t, unbounded.Contains(50))
}

func TestValidateTiers(t *testing.T) {
	t.Run("valid partition", func(t *testing.T) {
		p := tieredProduct()
		assert.NoError(t, p.ValidateTiers())
	})

	t.Run("no tiers", func(t *testing.T) {
		p := tieredProduct()
		p.Tiers = nil
		assert.Error(t, p.ValidateTiers())
	})

	t.Run("first tier not starting at 1", func(t *testing.T) {
		p := tieredProduct()
		p.Tiers[0].MinQuantity = 2
		assert.Error(t, p.ValidateTiers())
	})

	t.Run("gap between tiers", func(t *testing.T) {
		p := tieredProduct()
		p.Tiers[1].MinQuantity = 12
		assert.Error(t, p.ValidateTiers())
	})

	t.Run("overlapping tiers", func(t *testing.T) {
		p := tieredProduct()
		p.Tiers[1].MinQuantity = 10
		assert.Error(t, p.ValidateTiers())
	})

	t.Run("bounded last tier", func(t *testing.T) {
		p := tieredProduct()
		p.Tiers[2].MaxQuantity = 100
		assert.Error(t, p.ValidateTiers())
	})

	t.Run("price rising with quantity", func(t *testing.T) {
		p := tieredProduct()
		p.Tiers[2].Price = 30.0
		assert.Error(t, p.ValidateTiers())
	})
}
