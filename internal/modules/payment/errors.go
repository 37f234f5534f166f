package payment

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("payment not found")
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrInvalidMethod = errors.New("invalid payment method")
)
