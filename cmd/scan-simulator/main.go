package main

import (
	"context"
	"fmt"
	stdlog "log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"parcel-service/internal/pkg/kafka"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/logger/zap_adapter"
)

var (
	scansPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scan_simulator_published_total",
		Help: "Number of scan events published",
	}, []string{"status"})

	publishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scan_simulator_publish_duration_seconds",
		Help:    "Time to publish one scan event",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)

type options struct {
	brokers     string
	topic       string
	version     string
	interval    time.Duration
	hops        int
	failRate    float64
	metricsPort string
}

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

	var opts options
	pflag.StringVar(&opts.brokers, "brokers", "localhost:9092", "Comma separated Kafka brokers")
	pflag.StringVar(&opts.topic, "topic", "parcel.scanned", "Scan events topic")
	pflag.StringVar(&opts.version, "kafka-version", "3.6.0", "Kafka protocol version")
	pflag.DurationVar(&opts.interval, "interval", 2*time.Second, "Pause between scan events")
	pflag.IntVar(&opts.hops, "hops", 3, "Sorting centers per parcel")
	pflag.Float64Var(&opts.failRate, "fail-rate", 0.1, "Share of parcels ending in Failed")
	pflag.StringVar(&opts.metricsPort, "metrics-port", "2112", "Port for /metrics")
	pflag.Parse()

	trackingNumbers := pflag.Args()
	if len(trackingNumbers) == 0 {
		zapLogger.Error("usage: scan-simulator [flags] TRACKING_NUMBER...")
		return
	}

	err = run(context.Background(), zapLogger, opts, trackingNumbers)
	if err != nil {
		zapLogger.Error("scan simulator failed", logger.NewField("error", err))
	}
}

func run(ctx context.Context, log logger.Logger, opts options, trackingNumbers []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	producer, err := kafka.NewSyncProducer(kafka.ParseBrokers(opts.brokers), opts.version)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	publisher := kafka.NewPublisher(producer, opts.topic)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("failed to close producer", logger.NewField("error", err))
		}
	}()

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", opts.metricsPort),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server", logger.NewField("error", err))
		}
	}()
	defer metricsServer.Close()

	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid()))) //nolint:gosec // не криптография

	for _, trackingNumber := range trackingNumbers {
		for _, event := range scenario(trackingNumber, opts.hops, opts.failRate, rnd) {
			start := time.Now()
			err := publisher.Publish(ctx, event.TrackingNumber, event)
			publishDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				return fmt.Errorf("publish %s: %w", trackingNumber, err)
			}
			scansPublished.WithLabelValues(event.Status).Inc()

			log.With(
				logger.NewField("tracking_number", event.TrackingNumber),
				logger.NewField("status", event.Status),
				logger.NewField("location", event.Location),
			).Info("scan published")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(opts.interval):
			}
		}
	}

	log.Info("all scans published")
	return nil
}
