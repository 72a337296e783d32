package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusOutForDelivery,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(s), "%s should be valid", s)
	}
	assert.False(t, ValidOrderStatus("refunded"))
	assert.False(t, ValidOrderStatus(""))
}

func TestCanTransitionForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusDelivered))
	assert.True(t, CanTransition(OrderStatusProcessing, OrderStatusOutForDelivery))
	assert.True(t, CanTransition(OrderStatusOutForDelivery, OrderStatusShipped))
	assert.True(t, CanTransition(OrderStatusShipped, OrderStatusDelivered))

	assert.False(t, CanTransition(OrderStatusProcessing, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusShipped, OrderStatusProcessing))
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusPending))
}

func TestCanTransitionTerminalStates(t *testing.T) {
	for _, to := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusOutForDelivery,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.False(t, CanTransition(OrderStatusDelivered, to), "delivered -> %s", to)
		assert.False(t, CanTransition(OrderStatusCancelled, to), "cancelled -> %s", to)
	}
}

func TestCanTransitionCancellation(t *testing.T) {
	for _, from := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusOutForDelivery, OrderStatusShipped,
	} {
		assert.True(t, CanTransition(from, OrderStatusCancelled), "%s -> cancelled", from)
	}
}
