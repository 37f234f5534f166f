package room

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("room not found")
	ErrDuplicate  = errors.New("room number already exists")
)
