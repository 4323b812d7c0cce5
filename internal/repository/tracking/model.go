package tracking

import "time"

type TrackingUpdateDB struct {
	ID          int64     `db:"id"`
	ParcelID    int64     `db:"parcel_id"`
	Status      string    `db:"status"`
	Location    string    `db:"location"`
	Description string    `db:"description"`
	RecordedAt  time.Time `db:"recorded_at"`
}
