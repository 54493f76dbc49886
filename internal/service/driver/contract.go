//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Driver, error)
	GetByLicensePlates(ctx context.Context, licensePlates []string) ([]entities.Driver, error)
}
