package order

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidCustomerName    = errors.New("invalid customer name")
	ErrInvalidDeliveryAddress = errors.New("invalid delivery address")
	ErrInvalidConfirmation    = errors.New("invalid order confirmation")
	ErrInvalidLineItem        = errors.New("invalid line item")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrInvalidTransition      = errors.New("order cannot be changed to IN TRANSIT or DELIVERED if it's not assigned")

	ErrOrderNotFound  = errors.New("order not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("order already exists")
)
