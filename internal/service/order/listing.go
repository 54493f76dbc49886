package order

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type listOptions struct {
	withFlags   bool
	withDrivers bool
}

func (s *Service) listOrders(ctx context.Context, filter entities.OrderFilter, opts listOptions) (*entities.OrderListing, error) {
	var listing *entities.OrderListing
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		orders, err := s.repository.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}

		var drivers map[string]entities.Driver
		if opts.withDrivers {
			drivers, err = s.driversByPlate(ctx, orders)
			if err != nil {
				return err
			}
		}

		listing = s.buildListing(orders, drivers, opts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// driversByPlate загружает водителей всех назначенных заказов одним запросом.
func (s *Service) driversByPlate(ctx context.Context, orders []entities.Order) (map[string]entities.Driver, error) {
	seen := make(map[string]struct{}, len(orders))
	plates := make([]string, 0, len(orders))
	for _, order := range orders {
		if !order.IsAssigned() {
			continue
		}
		if _, ok := seen[order.AssignedTo]; ok {
			continue
		}
		seen[order.AssignedTo] = struct{}{}
		plates = append(plates, order.AssignedTo)
	}

	result := make(map[string]entities.Driver, len(plates))
	if len(plates) == 0 {
		return result, nil
	}

	drivers, err := s.drivers.GetByLicensePlates(ctx, plates)
	if err != nil {
		return nil, fmt.Errorf("get drivers by license plates: %w", err)
	}
	for _, driver := range drivers {
		result[driver.LicensePlate] = driver
	}
	return result, nil
}

func (s *Service) buildListing(orders []entities.Order, drivers map[string]entities.Driver, opts listOptions) *entities.OrderListing {
	views := make([]entities.OrderView, 0, len(orders))
	for _, order := range orders {
		view := entities.OrderView{
			Order:                  order,
			FormattedOrderDateTime: s.dateFormatter.Format(order.OrderDateTime),
			OrderTotal:             entities.CalculateOrderTotal(order.ItemsOrdered),
		}

		if opts.withFlags {
			view.Flags = &entities.OrderStatusFlags{
				IsReceived:  order.Status == entities.OrderReceived,
				IsDelivered: order.Status == entities.OrderDelivered,
				IsAssigned:  order.IsAssigned(),
			}
		}

		// висячая ссылка на водителя не ошибка, просто без данных водителя
		if driver, ok := drivers[order.AssignedTo]; ok && order.IsAssigned() {
			view.DriverName = driver.FullName
			view.DriverLicensePlate = driver.LicensePlate
		}

		views = append(views, view)
	}

	return &entities.OrderListing{
		Orders:        views,
		IsEmptyOrders: len(views) == 0,
	}
}
