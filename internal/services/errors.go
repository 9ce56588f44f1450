package services

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; anything else surfaces as a 500.
var (
	ErrForbidden        = errors.New("forbidden")
	ErrUserNotFound     = errors.New("user not found")
	ErrKitchenNotFound  = errors.New("kitchen not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidCreds     = errors.New("invalid credentials")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidRole      = errors.New("invalid role")
	ErrRatingRequired   = errors.New("rating required")
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrIllegalStatusHop = errors.New("illegal status transition")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidDelivery  = errors.New("delivery time out of range")
	ErrOwnFood          = errors.New("sellers cannot order their own food")
)
