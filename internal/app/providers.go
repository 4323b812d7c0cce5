package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-service/internal/handlers/rest/courier_delete"
	"parcel-service/internal/handlers/rest/courier_get"
	"parcel-service/internal/handlers/rest/courier_parcels_get"
	"parcel-service/internal/handlers/rest/courier_post"
	"parcel-service/internal/handlers/rest/couriers_get"
	"parcel-service/internal/handlers/rest/customer_delete"
	"parcel-service/internal/handlers/rest/customer_get"
	"parcel-service/internal/handlers/rest/customer_post"
	"parcel-service/internal/handlers/rest/parcel_assign_post"
	"parcel-service/internal/handlers/rest/parcel_get"
	"parcel-service/internal/handlers/rest/parcel_post"
	"parcel-service/internal/handlers/rest/parcel_unassign_post"
	"parcel-service/internal/handlers/rest/parcel_update_post"
	"parcel-service/internal/handlers/rest/parcels_get"
	"parcel-service/internal/handlers/tasks/parcel_stats"
	"parcel-service/internal/pkg/config"
	systemMetrics "parcel-service/internal/pkg/metrics"
	courierRepo "parcel-service/internal/repository/courier"
	customerRepo "parcel-service/internal/repository/customer"
	parcelRepo "parcel-service/internal/repository/parcel"
	trackingRepo "parcel-service/internal/repository/tracking"
	assignmentService "parcel-service/internal/service/assignment"
	parcelService "parcel-service/internal/service/parcel"
	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceCustomer   ServiceCustomer
	ServiceParcel     ServiceParcel
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	couriers_get.Service
	courier_delete.Service
}

type ServiceCustomer interface {
	customer_get.Service
	customer_post.Service
	customer_delete.Service
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_get.Service
	parcels_get.Service
	parcel_update_post.Service
	courier_parcels_get.Service
}

type ServiceAssignment interface {
	parcel_assign_post.Service
	parcel_unassign_post.Service
}

type KafkaWorkerApp struct {
	ParcelService *parcelService.Parcel
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideServiceParcel(
	repository parcelService.Repository,
	trackingRepository parcelService.TrackingRepository,
	customers parcelService.CustomerService,
	couriers parcelService.CourierService,
	trackingNumbers parcelService.TrackingNumberFactory,
	estimates parcelService.DeliveryEstimateFactory,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(
		repository,
		trackingRepository,
		customers,
		couriers,
		trackingNumbers,
		estimates,
		txManager,
	)
}

func provideServiceAssignment(
	repository assignmentService.ParcelRepository,
	trackingRepository assignmentService.TrackingRepository,
	couriers assignmentService.CourierService,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, trackingRepository, couriers, txManager)
}

func provideParcelStatsTask(
	log logger.Logger,
	service parcel_stats.Service,
	cfg *config.Config,
) *parcel_stats.ParcelStats {
	return parcel_stats.NewParcelStats(log, service, cfg.Tasks.ParcelStatsInterval)
}

func provideSystemCollector(cfg *config.Config) *systemMetrics.SystemCollector {
	return systemMetrics.NewSystemCollector(cfg.Tasks.SystemMetricsInterval)
}

func provideTaskList(
	parcelStatsTask *parcel_stats.ParcelStats,
	systemCollector *systemMetrics.SystemCollector,
) []background.Task {
	return []background.Task{
		parcelStatsTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
