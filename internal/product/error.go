package product

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("product name is required")
	ErrInvalidPrice  = errors.New("product price must be positive")
	ErrImageRequired = errors.New("product image is required")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Database & Operation Failures --
	ErrFailedListProducts  = errors.New("failed to list products")
	ErrFailedCreateProduct = errors.New("failed to create product")
	ErrFailedDeleteProduct = errors.New("failed to delete product")
)
