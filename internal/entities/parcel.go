package entities

import "time"

type Parcel struct {
	ID                int64
	TrackingNumber    string
	Sender            Customer
	Recipient         Customer
	CourierID         *string
	Weight            float64
	Length            float64
	Width             float64
	Height            float64
	ServiceType       ServiceType
	EstimatedDelivery time.Time
	Description       string
	Status            ParcelStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// History упорядочена от старых записей к новым.
	History []TrackingUpdate
}

// IsActive посылка ещё не в терминальном статусе.
func (p *Parcel) IsActive() bool {
	return !p.Status.IsTerminal()
}

type ServiceType string

const (
	ServiceStandard ServiceType = "Standard"
	ServiceExpress  ServiceType = "Express"
)

const DefaultServiceType = ServiceStandard

// габариты по умолчанию, если клиент их не передал
const (
	DefaultLength float64 = 10
	DefaultWidth  float64 = 5
	DefaultHeight float64 = 2
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceStandard, ServiceExpress:
		return true
	default:
		return false
	}
}

type ParcelStatus string

//   Created -> Dispatched -> InTransit -> Delivered
//      \___________\_____________\______> Failed
const (
	ParcelCreated    ParcelStatus = "Created"
	ParcelDispatched ParcelStatus = "Dispatched"
	ParcelInTransit  ParcelStatus = "InTransit"
	ParcelDelivered  ParcelStatus = "Delivered"
	ParcelFailed     ParcelStatus = "Failed"
)

// ParcelStatuses все статусы в порядке жизненного цикла.
var ParcelStatuses = [...]ParcelStatus{
	ParcelCreated,
	ParcelDispatched,
	ParcelInTransit,
	ParcelDelivered,
	ParcelFailed,
}

func (s ParcelStatus) String() string {
	return string(s)
}

func (s ParcelStatus) IsValid() bool {
	for _, v := range ParcelStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s ParcelStatus) IsTerminal() bool {
	return s == ParcelDelivered || s == ParcelFailed
}

// ParcelCreate входные данные для создания посылки.
type ParcelCreate struct {
	Sender            CustomerRef
	Recipient         CustomerRef
	CourierID         *string
	Weight            float64
	Length            float64
	Width             float64
	Height            float64
	ServiceType       ServiceType
	EstimatedDelivery *time.Time
	Description       string
}

// ParcelInsert то, что пишется в таблицу parcels, когда ссылки уже разрешены.
type ParcelInsert struct {
	TrackingNumber    string
	SenderID          int64
	RecipientID       int64
	CourierID         *string
	Weight            float64
	Length            float64
	Width             float64
	Height            float64
	ServiceType       ServiceType
	EstimatedDelivery time.Time
	Description       string
	Status            ParcelStatus
	CreatedAt         time.Time
}

type ParcelFilter struct {
	Status    *ParcelStatus
	CourierID *string
}

type Page struct {
	Page    uint64
	PerPage uint64
}

const (
	DefaultPage    uint64 = 1
	DefaultPerPage uint64 = 10
	MaxPerPage     uint64 = 100
)

func (p Page) Offset() uint64 {
	if p.Page == 0 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

type ParcelList struct {
	Parcels     []Parcel
	Total       uint64
	Pages       uint64
	CurrentPage uint64
}

type ParcelAssignment struct {
	TrackingNumber string
	CourierID      string
	Availability   CourierAvailability
	Update         TrackingUpdate
}

type ParcelUnassignment struct {
	TrackingNumber string
	CourierID      string
	Availability   CourierAvailability
	Update         TrackingUpdate
}
