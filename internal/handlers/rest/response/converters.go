package response

import (
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
)

func CustomerDTO(c entities.Customer) dto.Customer {
	return dto.Customer{
		Id:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func CourierDTO(c entities.Courier) dto.Courier {
	return dto.Courier{
		Id:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Vehicle:      c.Vehicle,
		Availability: dto.CourierAvailability(c.Availability),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func CouriersDTO(couriers []entities.Courier) []dto.Courier {
	result := make([]dto.Courier, 0, len(couriers))
	for _, c := range couriers {
		result = append(result, CourierDTO(c))
	}
	return result
}

func TrackingUpdateDTO(u entities.TrackingUpdate) dto.TrackingUpdate {
	return dto.TrackingUpdate{
		Id:          u.ID,
		Status:      dto.ParcelStatus(u.Status),
		Location:    u.Location,
		Description: u.Description,
		Timestamp:   u.Timestamp,
	}
}

func ParcelDTO(p entities.Parcel) dto.Parcel {
	history := make([]dto.TrackingUpdate, 0, len(p.History))
	for _, u := range p.History {
		history = append(history, TrackingUpdateDTO(u))
	}

	return dto.Parcel{
		TrackingNumber:    p.TrackingNumber,
		Sender:            CustomerDTO(p.Sender),
		Recipient:         CustomerDTO(p.Recipient),
		CourierId:         p.CourierID,
		Weight:            p.Weight,
		Length:            p.Length,
		Width:             p.Width,
		Height:            p.Height,
		ServiceType:       dto.ServiceType(p.ServiceType),
		EstimatedDelivery: p.EstimatedDelivery,
		Description:       p.Description,
		Status:            dto.ParcelStatus(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		TrackingHistory:   history,
	}
}

func ParcelsDTO(parcels []entities.Parcel) []dto.Parcel {
	result := make([]dto.Parcel, 0, len(parcels))
	for _, p := range parcels {
		result = append(result, ParcelDTO(p))
	}
	return result
}

func ParcelAssignmentDTO(a entities.ParcelAssignment) dto.ParcelAssignment {
	return dto.ParcelAssignment{
		TrackingNumber: a.TrackingNumber,
		CourierId:      a.CourierID,
		Availability:   dto.CourierAvailability(a.Availability),
		Update:         TrackingUpdateDTO(a.Update),
	}
}
