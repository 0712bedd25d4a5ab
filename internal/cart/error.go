package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidItemID = errors.New("cart item id is required")
	ErrInvalidPrice  = errors.New("cart item price must not be negative")
)
