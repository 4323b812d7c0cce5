package parcel

import (
	"math"
	"strings"

	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/factory/tracking_number"
)

func isValidTrackingNumber(trackingNumber string) bool {
	return tracking_number.IsValid(trackingNumber)
}

func isValidRef(ref entities.CustomerRef) bool {
	// ровно один из вариантов
	return (ref.ID == nil) != (ref.Details == nil)
}

func validateCreate(create *entities.ParcelCreate) error {
	if !isValidRef(create.Sender) {
		return ErrMissingSender
	}
	if !isValidRef(create.Recipient) {
		return ErrMissingRecipient
	}
	if create.Sender.ID != nil && create.Recipient.ID != nil && *create.Sender.ID == *create.Recipient.ID {
		return ErrSameSenderRecipient
	}

	if create.Weight <= 0 {
		return ErrInvalidWeight
	}
	if create.Length <= 0 || create.Width <= 0 || create.Height <= 0 {
		return ErrInvalidDimensions
	}

	if create.ServiceType == "" {
		create.ServiceType = entities.DefaultServiceType
	}
	if !create.ServiceType.IsValid() {
		return ErrInvalidServiceType
	}

	if create.CourierID != nil && strings.TrimSpace(*create.CourierID) == "" {
		return ErrInvalidCourierID
	}

	create.Description = strings.TrimSpace(create.Description)
	return nil
}

func normalizePage(page entities.Page) (entities.Page, error) {
	if page.Page == 0 {
		page.Page = entities.DefaultPage
	}
	if page.PerPage == 0 {
		page.PerPage = entities.DefaultPerPage
	}
	if page.PerPage > entities.MaxPerPage {
		return page, ErrInvalidPage
	}
	// номер страницы и смещение (Page-1)*PerPage должны поместиться в bigint
	if page.Page > math.MaxInt64 || page.Page-1 > math.MaxInt64/page.PerPage {
		return page, ErrInvalidPage
	}
	return page, nil
}
