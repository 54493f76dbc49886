//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seed_test
package seed

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, orders []entities.Order) error
}

type DriverRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, drivers []entities.Driver) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
