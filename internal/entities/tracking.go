package entities

import "time"

// TrackingUpdate запись журнала посылки, после добавления не меняется.
type TrackingUpdate struct {
	ID          int64
	ParcelID    int64
	Status      ParcelStatus
	Location    string
	Description string
	Timestamp   time.Time
}

type TrackingUpdateCreate struct {
	ParcelID    int64
	Status      ParcelStatus
	Location    string
	Description string
}

type ParcelStatusUpdate struct {
	Status      ParcelStatus
	Location    string
	Description string
}

// ParcelStatusCount количество посылок в статусе, для метрик.
type ParcelStatusCount struct {
	Status ParcelStatus
	Count  int64
}
