//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_get_test
package customer_get

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCustomer(ctx context.Context, id int64) (*entities.Customer, error)
}
