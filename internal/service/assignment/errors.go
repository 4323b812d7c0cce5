package assignment

import "errors"

var (
	ErrParcelAlreadyAssigned = errors.New("parcel already has a courier")
	ErrNoCourierAssigned     = errors.New("parcel has no courier")
)
