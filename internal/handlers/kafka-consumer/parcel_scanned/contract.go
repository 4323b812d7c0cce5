//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_scanned_test
package parcel_scanned

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
	AppendUpdate(ctx context.Context, trackingNumber string, statusUpdate entities.ParcelStatusUpdate) (*entities.TrackingUpdate, error)
}
