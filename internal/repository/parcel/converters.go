package parcel

import "parcel-service/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:                p.ID,
		TrackingNumber:    p.TrackingNumber,
		Sender:            customerToDomain(p.Sender),
		Recipient:         customerToDomain(p.Recipient),
		CourierID:         p.CourierID,
		Weight:            p.Weight,
		Length:            p.Length,
		Width:             p.Width,
		Height:            p.Height,
		ServiceType:       entities.ServiceType(p.ServiceType),
		EstimatedDelivery: p.EstimatedDelivery,
		Description:       p.Description,
		Status:            entities.ParcelStatus(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	result := make([]entities.Parcel, len(parcelsDB))
	for i := range parcelsDB {
		result[i] = *ToDomain(&parcelsDB[i])
	}
	return result
}

func customerToDomain(c CustomerDB) entities.Customer {
	return entities.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func StatusCountsToDomain(counts []StatusCountDB) []entities.ParcelStatusCount {
	result := make([]entities.ParcelStatusCount, len(counts))
	for i, c := range counts {
		result[i] = entities.ParcelStatusCount{
			Status: entities.ParcelStatus(c.Status),
			Count:  c.Count,
		}
	}
	return result
}
