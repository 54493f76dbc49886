//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type DriverDirectory interface {
	GetByLicensePlates(ctx context.Context, licensePlates []string) ([]entities.Driver, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChanged) error
}

type DateFormatter interface {
	Format(t time.Time) string
}

type (
	CheckFn     func(order *entities.Order) error
	RuleFactory interface {
		GetRule(status entities.OrderStatusType) (CheckFn, error)
	}
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
