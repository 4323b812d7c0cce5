//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"parcel-service/internal/entities"
)

type ParcelRepository interface {
	GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber string) (*entities.Parcel, error)
	SetCourier(ctx context.Context, parcelID int64, courierID *string) error
}

type TrackingRepository interface {
	Append(ctx context.Context, update entities.TrackingUpdateCreate) (*entities.TrackingUpdate, error)
}

type CourierService interface {
	GetCourier(ctx context.Context, id string) (*entities.Courier, error)
	ClaimCourier(ctx context.Context, id string) (*entities.Courier, error)
	ReleaseCourier(ctx context.Context, id string) (*entities.Courier, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
