package order

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUnauthorized = errors.New("unauthorized")

	// -- Validation & Input --
	ErrEmptyAddress  = errors.New("shipping address is required")
	ErrEmptyItems    = errors.New("order has no items")
	ErrInvalidStatus = errors.New("invalid order status")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderFinal        = errors.New("order is already in a final status")
	ErrTransitionRefused = errors.New("status transition not allowed")

	// -- External Systems --
	ErrPaymentFailed = errors.New("failed to create payment invoice")
)
