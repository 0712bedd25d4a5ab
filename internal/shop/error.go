package shop

import "errors"

var (
	ErrNoStore = errors.New("shop: store is required")

	// -- Checkout --
	ErrLoginRequired   = errors.New("login required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoPaymentMethod = errors.New("no payment method selected")
	ErrInvalidPayment  = errors.New("invalid payment details")
	ErrInvalidShipping = errors.New("invalid shipping details")

	// -- Orders --
	ErrNoLastOrder         = errors.New("no order has been placed")
	ErrOrderNumberRequired = errors.New("order number is required")
)

var rejections = []error{
	ErrLoginRequired,
	ErrEmptyCart,
	ErrNoPaymentMethod,
	ErrInvalidPayment,
	ErrInvalidShipping,
	ErrNoLastOrder,
	ErrOrderNumberRequired,
}

// IsRejection reports whether err is an operation refused for the visitor to
// correct, as opposed to a store failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
