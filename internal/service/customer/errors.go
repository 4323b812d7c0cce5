package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidAddress        = errors.New("invalid address")

	ErrCustomerNotFound    = errors.New("customer not found")
	ErrReferentialConflict = errors.New("customer is referenced by parcels")
)
