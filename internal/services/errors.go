package services

import "errors"

// Validation failures returned by the services. All of them leave state
// untouched; handlers map them to client error responses with errors.Is.
var (
	// ErrInvalidQuantity covers non-positive quantities and tier lookups
	// that do not belong to the product.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrEmptyCart is returned by checkout when the cart has no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidPaymentAmount is returned for non-positive payments and
	// payments exceeding the customer's current balance.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrInvalidTransition is returned when an order status change is
	// not allowed by the fulfillment transition graph.
	ErrInvalidTransition = errors.New("invalid status transition")
)
