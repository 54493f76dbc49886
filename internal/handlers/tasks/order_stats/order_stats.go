package order_stats

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	var total int64
	for _, status := range entities.OrderStatuses {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
		total += counts[status]
	}

	o.log.With(
		logger.NewField("total", total),
	).Info("order stats refreshed")

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
