package guest

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("guest not found")
	ErrDuplicate  = errors.New("guest already exists")
)
