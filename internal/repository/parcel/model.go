package parcel

import "time"

type ParcelDB struct {
	ID                int64
	TrackingNumber    string
	CourierID         *string
	Weight            float64
	Length            float64
	Width             float64
	Height            float64
	ServiceType       string
	EstimatedDelivery time.Time
	Description       string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Sender    CustomerDB
	Recipient CustomerDB
}

type CustomerDB struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

type StatusCountDB struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}
