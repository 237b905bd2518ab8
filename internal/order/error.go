package order

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidDeliveryOption = errors.New("invalid delivery option")
	ErrOrderCreationFailed   = errors.New("order creation failed")
)
