//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	GetOrCreate(ctx context.Context, details entities.CustomerDetails) (*entities.Customer, error)
	GetByID(ctx context.Context, id int64) (*entities.Customer, error)
	Delete(ctx context.Context, id int64) error
}
