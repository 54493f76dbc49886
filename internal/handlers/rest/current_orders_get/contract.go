//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=current_orders_get_test
package current_orders_get

import (
	"context"
	"io"

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
	ListCurrentOrders(ctx context.Context) (*entities.OrderListing, error)
}

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}
