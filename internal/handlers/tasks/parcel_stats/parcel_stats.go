package parcel_stats

import (
	"context"
	"fmt"
	"time"

	"parcel-service/pkg/logger"
)

type ParcelStats struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewParcelStats(log taskLogger, service Service, interval time.Duration) *ParcelStats {
	return &ParcelStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *ParcelStats) TTL() time.Duration {
	return p.interval
}

// Do пересчитывает gauge по статусам. Статусы без посылок получают ноль, а не старое значение.
func (p *ParcelStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	counts, err := p.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count parcels by status: %w", err)
	}

	var total int64
	for _, c := range counts {
		ParcelsByStatus.WithLabelValues(c.Status.String()).Set(float64(c.Count))
		total += c.Count
	}

	p.log.With(
		logger.NewField("parcels_total", total),
	).Info("parcel stats refreshed")

	return nil
}

func (p *ParcelStats) Info() string {
	return "parcel stats"
}
