package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grosir/internal/models"
)

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusConfirmed,
		models.OrderStatusInTransit,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		assert.True(t, status.Valid(), "expected %s to be a declared status", status)
	}
	assert.False(t, models.OrderStatus("Shipped").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	// The happy path runs the full fulfillment chain.
	assert.True(t, models.OrderStatusProcessing.CanTransitionTo(models.OrderStatusConfirmed))
	assert.True(t, models.OrderStatusConfirmed.CanTransitionTo(models.OrderStatusInTransit))
	assert.True(t, models.OrderStatusInTransit.CanTransitionTo(models.OrderStatusDelivered))

	// Cancellation is only possible before shipping.
	assert.True(t, models.OrderStatusProcessing.CanTransitionTo(models.OrderStatusCancelled))
	assert.True(t, models.OrderStatusConfirmed.CanTransitionTo(models.OrderStatusCancelled))
	assert.False(t, models.OrderStatusInTransit.CanTransitionTo(models.OrderStatusCancelled))

	// No skipping ahead or moving backwards.
	assert.False(t, models.OrderStatusProcessing.CanTransitionTo(models.OrderStatusDelivered))
	assert.False(t, models.OrderStatusProcessing.CanTransitionTo(models.OrderStatusInTransit))
	assert.False(t, models.OrderStatusConfirmed.CanTransitionTo(models.OrderStatusProcessing))

	// Delivered and Cancelled are terminal.
	for _, next := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusConfirmed,
		models.OrderStatusInTransit,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		assert.False(t, models.OrderStatusDelivered.CanTransitionTo(next))
		assert.False(t, models.OrderStatusCancelled.CanTransitionTo(next))
	}
}
