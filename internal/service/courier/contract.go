//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
	GetByID(ctx context.Context, id string) (*entities.Courier, error)
	GetAll(ctx context.Context, availability *entities.CourierAvailability) ([]entities.Courier, error)
	Delete(ctx context.Context, id string) error

	// Claim переводит курьера available -> assigned условным UPDATE.
	Claim(ctx context.Context, id string) (*entities.Courier, error)
	Release(ctx context.Context, id string) (*entities.Courier, error)
}
