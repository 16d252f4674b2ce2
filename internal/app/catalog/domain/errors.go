package domain

import "errors"

// Domain errors as sentinel values
var (
	// ErrProductNotFound is returned when a product id does not resolve to
	// an active product. Inactive products are invisible to this engine.
	ErrProductNotFound = errors.New("product not found")
)
