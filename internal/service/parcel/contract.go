//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, insert entities.ParcelInsert) (int64, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Parcel, error)
	GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber string) (*entities.Parcel, error)
	UpdateStatus(ctx context.Context, parcelID int64, status entities.ParcelStatus) error
	List(ctx context.Context, filter entities.ParcelFilter, page entities.Page) ([]entities.Parcel, uint64, error)
	ListByCourier(ctx context.Context, courierID string) ([]entities.Parcel, error)
	CountByStatus(ctx context.Context) ([]entities.ParcelStatusCount, error)
}

type TrackingRepository interface {
	Append(ctx context.Context, update entities.TrackingUpdateCreate) (*entities.TrackingUpdate, error)
	ListByParcelID(ctx context.Context, parcelID int64) ([]entities.TrackingUpdate, error)
	ListByParcelIDs(ctx context.Context, parcelIDs []int64) (map[int64][]entities.TrackingUpdate, error)
}

type CustomerService interface {
	GetCustomer(ctx context.Context, id int64) (*entities.Customer, error)
	CreateCustomer(ctx context.Context, details entities.CustomerDetails) (*entities.Customer, error)
}

type CourierService interface {
	ClaimCourier(ctx context.Context, id string) (*entities.Courier, error)
	ReleaseCourier(ctx context.Context, id string) (*entities.Courier, error)
}

type TrackingNumberFactory interface {
	Generate() (string, error)
}

type DeliveryEstimateFactory interface {
	EstimateDelivery(serviceType entities.ServiceType, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
