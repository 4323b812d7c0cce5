package tracking

import "parcel-service/internal/entities"

func ToDomain(u *TrackingUpdateDB) *entities.TrackingUpdate {
	if u == nil {
		return nil
	}

	return &entities.TrackingUpdate{
		ID:          u.ID,
		ParcelID:    u.ParcelID,
		Status:      entities.ParcelStatus(u.Status),
		Location:    u.Location,
		Description: u.Description,
		Timestamp:   u.RecordedAt,
	}
}

func ToDomainList(updates []TrackingUpdateDB) []entities.TrackingUpdate {
	result := make([]entities.TrackingUpdate, len(updates))
	for i := range updates {
		result[i] = *ToDomain(&updates[i])
	}
	return result
}
