package courier

import (
	"parcel-service/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Vehicle:      c.Vehicle,
		Availability: entities.CourierAvailability(c.Availability),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:      courierModify.ID,
		Name:    courierModify.Name,
		Email:   courierModify.Email,
		Phone:   courierModify.Phone,
		Vehicle: courierModify.Vehicle,
	}

	if courierModify.Availability != nil {
		availability := courierModify.Availability.String()
		courierDB.Availability = &availability
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
