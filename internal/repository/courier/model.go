package courier

import "time"

type CourierDB struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Vehicle      string    `db:"vehicle"`
	Availability string    `db:"availability"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type CourierModifyDB struct {
	ID           *string
	Name         *string
	Email        *string
	Phone        *string
	Vehicle      *string
	Availability *string
}
