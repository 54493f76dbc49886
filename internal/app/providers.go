package app

import (
	"context"
	"time"

	"dispatch/internal/gateway/kafka/order_events"
	"dispatch/internal/handlers/kafka-consumer/order_placed"
	"dispatch/internal/handlers/rest/current_orders_get"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/order_assign_post"
	"dispatch/internal/handlers/rest/order_history_get"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/status_change_post"
	"dispatch/internal/handlers/tasks/order_stats"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/date_format"
	"dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/views"

	driverRepo "dispatch/internal/repository/driver"
	orderRepo "dispatch/internal/repository/order"
	driverService "dispatch/internal/service/driver"
	orderService "dispatch/internal/service/order"
	seedService "dispatch/internal/service/seed"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OrderStatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceDriver     ServiceDriver
	ServiceSeed       *seedService.Service
	Renderer          *views.Renderer
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_history_get.Service
	current_orders_get.Service
	status_change_post.Service
	order_assign_post.Service
}

type ServiceDriver interface {
	drivers_get.Service
}

type OrderPlacedWorkerApp struct {
	OrderService order_placed.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) orderService.EventPublisher {
	if producer == nil {
		return order_events.NewNoop()
	}
	return order_events.New(producer, cfg.Kafka.OrderStatusTopic)
}

func provideNoopEventPublisher() orderService.EventPublisher {
	return order_events.NewNoop()
}

func provideDateFormatter(cfg *config.Config) *date_format.DateFormatter {
	return date_format.New(cfg.Orders.DateLayout, cfg.Orders.Timezone)
}

func provideServiceOrder(
	repository orderService.Repository,
	drivers orderService.DriverDirectory,
	publisher orderService.EventPublisher,
	dateFormatter orderService.DateFormatter,
	rules orderService.RuleFactory,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(
		repository,
		drivers,
		publisher,
		dateFormatter,
		rules,
		txManager,
		log,
	)
}

func provideServiceSeed(
	orders seedService.OrderRepository,
	drivers seedService.DriverRepository,
	txManager seedService.TxManager,
) *seedService.Service {
	return seedService.New(orders, drivers, txManager)
}

func provideOrderStatsInterval(cfg *config.Config) OrderStatsInterval {
	return OrderStatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	service order_stats.Service,
	interval OrderStatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, service, time.Duration(interval))
}

func provideSystemCollector() *metrics.SystemCollector {
	return metrics.NewSystemCollector(0)
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		orderStatsTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
