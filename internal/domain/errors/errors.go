package errors

import "errors"

// Sentinel errors shared across use cases, storage, and handlers.
// Unauthenticated, forbidden, not-owned, and not-found outcomes stay
// distinguishable up to the HTTP boundary.
var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleForbidden      = errors.New("role not allowed")
	ErrNotOwner           = errors.New("not the order owner")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrValidation         = errors.New("invalid order fields")
)
