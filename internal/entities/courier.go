package entities

import (
	"time"
)

type Courier struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Vehicle      string
	Availability CourierAvailability
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CourierAvailability string

const (
	CourierAvailable CourierAvailability = "available"
	CourierAssigned  CourierAvailability = "assigned"
)

const DefaultAvailability = CourierAvailable

func (a CourierAvailability) String() string {
	return string(a)
}

func (a CourierAvailability) IsValid() bool {
	switch a {
	case CourierAvailable, CourierAssigned:
		return true
	default:
		return false
	}
}

type CourierModify struct {
	ID           *string
	Name         *string
	Email        *string
	Phone        *string
	Vehicle      *string
	Availability *CourierAvailability
}
