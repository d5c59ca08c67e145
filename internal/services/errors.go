// internal/services/errors.go
package services

import "errors"

// Terminal request errors. Handlers map these to 400/404; anything else
// coming out of a service is a store failure and maps to 500 with the
// original message.
var (
	ErrInvalidID       = errors.New("invalid id format")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
