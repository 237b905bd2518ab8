package cart

import "errors"

var (
	// -- Resource State --
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductUnavailable = errors.New("product is not available")
)
