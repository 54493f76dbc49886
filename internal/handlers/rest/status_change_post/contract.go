//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_change_post_test
package status_change_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ChangeStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType) (*entities.Order, error)
}
