//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-service/internal/handlers/tasks/parcel_stats"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/factory/delivery_estimate"
	"parcel-service/internal/pkg/factory/tracking_number"
	courierRepo "parcel-service/internal/repository/courier"
	customerRepo "parcel-service/internal/repository/customer"
	parcelRepo "parcel-service/internal/repository/parcel"
	trackingRepo "parcel-service/internal/repository/tracking"
	assignmentService "parcel-service/internal/service/assignment"
	courierService "parcel-service/internal/service/courier"
	customerService "parcel-service/internal/service/customer"
	parcelService "parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideParcelStatsTask,
		provideSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),

		wire.Bind(new(parcel_stats.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-parcel-scanned)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCourierRepository,
	provideCustomerRepository,
	provideParcelRepository,
	provideTrackingRepository,

	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
	wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
	wire.Bind(new(parcelService.TrackingRepository), new(*trackingRepo.Repository)),
	wire.Bind(new(assignmentService.ParcelRepository), new(*parcelRepo.Repository)),
	wire.Bind(new(assignmentService.TrackingRepository), new(*trackingRepo.Repository)),

	wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
	wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
)

var serviceSet = wire.NewSet(
	courierService.New,
	customerService.New,
	tracking_number.New,
	delivery_estimate.New,
	provideServiceParcel,
	provideServiceAssignment,

	wire.Bind(new(parcelService.CustomerService), new(*customerService.Customer)),
	wire.Bind(new(parcelService.CourierService), new(*courierService.Courier)),
	wire.Bind(new(parcelService.TrackingNumberFactory), new(*tracking_number.TrackingNumberFactory)),
	wire.Bind(new(parcelService.DeliveryEstimateFactory), new(*delivery_estimate.DeliveryEstimateFactory)),
	wire.Bind(new(assignmentService.CourierService), new(*courierService.Courier)),
)
