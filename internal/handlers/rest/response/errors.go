package response

import (
	"errors"
	"net/http"

	"parcel-service/internal/service/assignment"
	"parcel-service/internal/service/courier"
	"parcel-service/internal/service/customer"
	"parcel-service/internal/service/parcel"
)

// коды ошибок в теле ответа, клиенты на них завязываются
const (
	CodeNotFound              = "NOT_FOUND"
	CodeInvalidReference      = "INVALID_REFERENCE"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeCourierUnavailable    = "COURIER_UNAVAILABLE"
	CodeNoCourierAssigned     = "NO_COURIER_ASSIGNED"
	CodeParcelAlreadyAssigned = "PARCEL_ALREADY_ASSIGNED"
	CodeParcelClosed          = "PARCEL_CLOSED"
	CodeConflict              = "CONFLICT"
	CodeReferentialConflict   = "REFERENTIAL_CONFLICT"
	CodeIdentifierExhaustion  = "IDENTIFIER_EXHAUSTION"
	CodeInternal              = "INTERNAL"
)

var validationErrors = []error{
	parcel.ErrInvalidParcel,
	parcel.ErrInvalidWeight,
	parcel.ErrInvalidDimensions,
	parcel.ErrInvalidServiceType,
	parcel.ErrMissingSender,
	parcel.ErrMissingRecipient,
	parcel.ErrInvalidPage,
	parcel.ErrInvalidCourierID,
	parcel.ErrSameSenderRecipient,

	courier.ErrMissingRequiredFields,
	courier.ErrInvalidCourierID,
	courier.ErrInvalidName,
	courier.ErrInvalidEmail,
	courier.ErrInvalidPhone,
	courier.ErrInvalidVehicle,
	courier.ErrInvalidAvailability,

	customer.ErrMissingRequiredFields,
	customer.ErrInvalidCustomerID,
	customer.ErrInvalidName,
	customer.ErrInvalidEmail,
	customer.ErrInvalidPhone,
	customer.ErrInvalidAddress,
}

// Classify сопоставляет ошибку сервиса со статусом и кодом ответа.
// Порядок важен: InvalidReference оборачивает not found курьера или клиента.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, parcel.ErrIdentifierExhaustion):
		return http.StatusServiceUnavailable, CodeIdentifierExhaustion
	case errors.Is(err, parcel.ErrInvalidReference):
		return http.StatusUnprocessableEntity, CodeInvalidReference
	case errors.Is(err, parcel.ErrParcelNotFound),
		errors.Is(err, parcel.ErrInvalidTrackingNumber),
		errors.Is(err, courier.ErrCourierNotFound),
		errors.Is(err, customer.ErrCustomerNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, parcel.ErrInvalidStatus):
		return http.StatusBadRequest, CodeInvalidStatus
	case errors.Is(err, courier.ErrCourierUnavailable):
		return http.StatusConflict, CodeCourierUnavailable
	case errors.Is(err, assignment.ErrNoCourierAssigned):
		return http.StatusConflict, CodeNoCourierAssigned
	case errors.Is(err, assignment.ErrParcelAlreadyAssigned):
		return http.StatusConflict, CodeParcelAlreadyAssigned
	case errors.Is(err, parcel.ErrParcelClosed):
		return http.StatusConflict, CodeParcelClosed
	case errors.Is(err, courier.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, courier.ErrReferentialConflict),
		errors.Is(err, customer.ErrReferentialConflict):
		return http.StatusConflict, CodeReferentialConflict
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, CodeValidationError
		}
	}

	return http.StatusInternalServerError, CodeInternal
}
