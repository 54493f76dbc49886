//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/handlers/kafka-consumer/order_placed"
	"dispatch/internal/handlers/tasks/order_stats"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/date_format"
	"dispatch/internal/pkg/factory/status_rule"
	"dispatch/internal/pkg/views"

	driverRepo "dispatch/internal/repository/driver"
	orderRepo "dispatch/internal/repository/order"
	driverService "dispatch/internal/service/driver"
	orderService "dispatch/internal/service/order"
	seedService "dispatch/internal/service/seed"

	"dispatch/pkg/logger"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service). producer == nil означает KAFKA_ENABLED=false.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderStatsInterval,

		provideOrderRepository,
		provideDriverRepository,

		provideServiceDriver,
		provideEventPublisher,
		provideDateFormatter,
		status_rule.NewStatusRuleFactory,
		provideServiceOrder,
		provideServiceSeed,
		views.New,

		provideOrderStatsTask,
		provideSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DriverDirectory), new(*driverService.Driver)),
		wire.Bind(new(orderService.DateFormatter), new(*date_format.DateFormatter)),
		wire.Bind(new(orderService.RuleFactory), new(*status_rule.StatusRuleFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(seedService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(seedService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(seedService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_stats.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

// InitializeOrderPlacedWorkerApp для Kafka воркера (cmd/worker-order-placed)
func InitializeOrderPlacedWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*OrderPlacedWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideDriverRepository,

		provideServiceDriver,
		provideNoopEventPublisher,
		provideDateFormatter,
		status_rule.NewStatusRuleFactory,
		provideServiceOrder,

		wire.Bind(new(order_placed.Service), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DriverDirectory), new(*driverService.Driver)),
		wire.Bind(new(orderService.DateFormatter), new(*date_format.DateFormatter)),
		wire.Bind(new(orderService.RuleFactory), new(*status_rule.StatusRuleFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Struct(new(OrderPlacedWorkerApp), "*"),
	)
	return nil, nil
}
