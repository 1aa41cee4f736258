package domain

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidInput      = errors.New("invalid input data")
	ErrInternal          = errors.New("internal server error")
)
