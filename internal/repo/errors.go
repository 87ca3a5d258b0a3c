package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDeliveryNotFound is returned when a delivery is not found in the repository.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrInvalidQuantityChange is returned when an adjustment would leave a negative quantity.
	ErrInvalidQuantityChange = errors.New("quantity cannot be negative")
)
