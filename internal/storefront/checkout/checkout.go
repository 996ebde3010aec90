package checkout

import "errors"

var (
	ErrNotAuthenticated = errors.New("login is required before checkout")
	ErrEmptyAddress     = errors.New("shipping address is required")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")
)
