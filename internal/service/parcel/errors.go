package parcel

import "errors"

// ошибки валидации входных данных
var (
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidParcel         = errors.New("invalid parcel")
	ErrInvalidWeight         = errors.New("weight must be positive")
	ErrInvalidDimensions     = errors.New("dimensions must be positive")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrMissingSender         = errors.New("sender is required")
	ErrMissingRecipient      = errors.New("recipient is required")
	ErrInvalidPage           = errors.New("invalid page")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrSameSenderRecipient   = errors.New("sender and recipient must differ")
)

var (
	ErrParcelNotFound   = errors.New("parcel not found")
	ErrParcelClosed     = errors.New("parcel is in a terminal status")
	ErrInvalidReference = errors.New("referenced entity does not exist")

	ErrDuplicateTrackingNumber = errors.New("duplicate tracking number")
	ErrIdentifierExhaustion    = errors.New("could not allocate a unique tracking number")
)
