package payment

import "errors"

var (
	ErrNoMethod      = errors.New("no payment method selected")
	ErrUnknownMethod = errors.New("unknown payment method")
)
