package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidVehicle        = errors.New("invalid vehicle")
	ErrInvalidAvailability   = errors.New("invalid availability")

	ErrCourierNotFound     = errors.New("courier not found")
	ErrCourierUnavailable  = errors.New("courier unavailable")
	ErrConflict            = errors.New("resource already exists")
	ErrReferentialConflict = errors.New("courier is referenced by parcels")
)
