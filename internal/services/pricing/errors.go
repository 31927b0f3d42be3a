package pricing

import "errors"

var (
	ErrConfigUnavailable = errors.New("pricing configuration unavailable")
	ErrInvalidConfig     = errors.New("invalid pricing configuration")
	ErrQuoteNotFound     = errors.New("quote not found")
)
