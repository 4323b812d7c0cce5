//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_unassign_post_test
package parcel_unassign_post

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
	UnassignCourier(ctx context.Context, trackingNumber string) (*entities.ParcelUnassignment, error)
}
