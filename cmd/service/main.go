package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "parcel-service/internal/app"
	"parcel-service/internal/handlers/rest/courier_delete"
	"parcel-service/internal/handlers/rest/courier_get"
	"parcel-service/internal/handlers/rest/courier_parcels_get"
	"parcel-service/internal/handlers/rest/courier_post"
	"parcel-service/internal/handlers/rest/couriers_get"
	"parcel-service/internal/handlers/rest/customer_delete"
	"parcel-service/internal/handlers/rest/customer_get"
	"parcel-service/internal/handlers/rest/customer_post"
	"parcel-service/internal/handlers/rest/healthcheck_head"
	"parcel-service/internal/handlers/rest/parcel_assign_post"
	"parcel-service/internal/handlers/rest/parcel_get"
	"parcel-service/internal/handlers/rest/parcel_post"
	"parcel-service/internal/handlers/rest/parcel_unassign_post"
	"parcel-service/internal/handlers/rest/parcel_update_post"
	"parcel-service/internal/handlers/rest/parcels_get"
	"parcel-service/internal/handlers/rest/ping_get"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/dotenv"
	"parcel-service/internal/pkg/middlewares/graceful_shutdown"
	"parcel-service/internal/pkg/middlewares/metrics"
	"parcel-service/internal/pkg/middlewares/rate_limiter"
	"parcel-service/internal/pkg/middlewares/request_id"
	"parcel-service/internal/pkg/middlewares/timeout"
	"parcel-service/internal/pkg/postgres"
	"parcel-service/migrations"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/logger/zap_adapter"
	"parcel-service/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting parcel-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
		if err := dotenv.ApplyFlags(os.Args[1:]); err != nil {
			mainLog.Error("parse flags", logger.NewField("error", err))
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background() в рамках graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	err = postgres.Migrate(ctx, log, pool, migrations.FS)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels", parcels_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/{tracking_number}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/{tracking_number}/updates", parcel_update_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/{tracking_number}/assign", parcel_assign_post.New(log, app.ServiceAssignment)).Methods("POST")
	router.Handle("/parcels/{tracking_number}/unassign", parcel_unassign_post.New(log, app.ServiceAssignment)).Methods("POST")

	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/couriers/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers/{id}", courier_delete.New(log, app.ServiceCourier)).Methods("DELETE")
	router.Handle("/couriers/{id}/parcels", courier_parcels_get.New(log, app.ServiceParcel)).Methods("GET")

	router.Handle("/customers", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	router.Handle("/customers/{id}", customer_get.New(log, app.ServiceCustomer)).Methods("GET")
	router.Handle("/customers/{id}", customer_delete.New(log, app.ServiceCustomer)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
