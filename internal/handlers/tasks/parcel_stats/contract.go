//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_stats_test
package parcel_stats

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountByStatus(ctx context.Context) ([]entities.ParcelStatusCount, error)
}
