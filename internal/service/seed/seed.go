package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Result struct {
	OrdersInserted  int
	DriversInserted int
}

type Service struct {
	orders       OrderRepository
	drivers      DriverRepository
	txManager    TxManager
	passwordCost int
}

func New(orders OrderRepository, drivers DriverRepository, txManager TxManager) *Service {
	return &Service{
		orders:       orders,
		drivers:      drivers,
		txManager:    txManager,
		passwordCost: bcrypt.DefaultCost,
	}
}

// WithPasswordCost задает стоимость bcrypt (тесты используют bcrypt.MinCost).
func (s *Service) WithPasswordCost(cost int) *Service {
	s.passwordCost = cost
	return s
}

// Seed наполняет пустые хранилища демонстрационными данными. Непустое хранилище не трогается,
// повторный вызов ничего не вставляет.
func (s *Service) Seed(ctx context.Context) (*Result, error) {
	result := &Result{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ordersInserted, err := s.seedOrders(ctx)
		if err != nil {
			return err
		}

		driversInserted, err := s.seedDrivers(ctx)
		if err != nil {
			return err
		}

		result.OrdersInserted = ordersInserted
		result.DriversInserted = driversInserted
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return result, nil
}

func (s *Service) seedOrders(ctx context.Context) (int, error) {
	count, err := s.orders.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	orders := ExampleOrders(time.Now().UTC())
	if err := s.orders.InsertMany(ctx, orders); err != nil {
		return 0, fmt.Errorf("insert orders: %w", err)
	}
	return len(orders), nil
}

func (s *Service) seedDrivers(ctx context.Context) (int, error) {
	count, err := s.drivers.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count drivers: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	drivers := ExampleDrivers()
	for i := range drivers {
		hash, err := bcrypt.GenerateFromPassword([]byte(drivers[i].Password), s.passwordCost)
		if err != nil {
			return 0, fmt.Errorf("hash password for %s: %w", drivers[i].Username, err)
		}
		drivers[i].Password = string(hash)
	}

	if err := s.drivers.InsertMany(ctx, drivers); err != nil {
		return 0, fmt.Errorf("insert drivers: %w", err)
	}
	return len(drivers), nil
}
