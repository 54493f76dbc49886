package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"github.com/google/uuid"
)

type Service struct {
	repository    Repository
	drivers       DriverDirectory
	publisher     EventPublisher
	dateFormatter DateFormatter
	rules         RuleFactory
	txManager     TxManager
	log           serviceLogger
}

func New(
	repository Repository,
	drivers DriverDirectory,
	publisher EventPublisher,
	dateFormatter DateFormatter,
	rules RuleFactory,
	txManager TxManager,
	log serviceLogger,
) *Service {
	return &Service{
		repository:    repository,
		drivers:       drivers,
		publisher:     publisher,
		dateFormatter: dateFormatter,
		rules:         rules,
		txManager:     txManager,
		log:           log,
	}
}

// ListActiveOrders возвращает все недоставленные заказы по возрастанию времени заказа
// с флагами статуса и данными водителя.
func (s *Service) ListActiveOrders(ctx context.Context) (*entities.OrderListing, error) {
	listing, err := s.listOrders(ctx, entities.OrderFilter{
		ExcludeStatuses: []entities.OrderStatusType{entities.OrderDelivered},
	}, listOptions{withFlags: true, withDrivers: true})
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}
	return listing, nil
}

// ListOrderHistory возвращает доставленные заказы по возрастанию времени заказа.
func (s *Service) ListOrderHistory(ctx context.Context) (*entities.OrderListing, error) {
	listing, err := s.listOrders(ctx, entities.OrderFilter{
		Statuses: []entities.OrderStatusType{entities.OrderDelivered},
	}, listOptions{withDrivers: true})
	if err != nil {
		return nil, fmt.Errorf("list order history: %w", err)
	}
	return listing, nil
}

// ListCurrentOrders возвращает только что принятые заказы, новые первыми.
func (s *Service) ListCurrentOrders(ctx context.Context) (*entities.OrderListing, error) {
	listing, err := s.listOrders(ctx, entities.OrderFilter{
		Statuses: []entities.OrderStatusType{entities.OrderReceived},
		SortDesc: true,
	}, listOptions{})
	if err != nil {
		return nil, fmt.Errorf("list current orders: %w", err)
	}
	return listing, nil
}

func (s *Service) ChangeStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType) (*entities.Order, error) {
	orderID, ok := parseOrderID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}

	var (
		updated        *entities.Order
		previousStatus entities.OrderStatusType
		changed        bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		check, err := s.rules.GetRule(newStatus)
		if err != nil {
			return err
		}
		if err := check(order); err != nil {
			return err
		}

		// статус не меняется: ни записи, ни события
		if order.Status == newStatus {
			updated, changed = order, false
			return nil
		}

		previousStatus = order.Status
		changed = true
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &order.ID,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishStatusChanged(ctx, updated, previousStatus)
	}
	return updated, nil
}

// AssignOrder назначает заказ водителю по номеру машины. Пустой номер снимает назначение.
func (s *Service) AssignOrder(ctx context.Context, orderID string, licensePlate string) (*entities.Order, error) {
	orderID, ok := parseOrderID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	licensePlate = strings.TrimSpace(licensePlate)

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if licensePlate == "" {
			if order.Status.RequiresAssignment() {
				return fmt.Errorf("unassign order in status %s: %w", order.Status, ErrInvalidTransition)
			}
		} else {
			drivers, err := s.drivers.GetByLicensePlates(ctx, []string{licensePlate})
			if err != nil {
				return fmt.Errorf("get driver: %w", err)
			}
			if len(drivers) == 0 {
				return fmt.Errorf("license plate %s: %w", licensePlate, ErrDriverNotFound)
			}
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:         &order.ID,
			AssignedTo: &licensePlate,
		})
		if err != nil {
			return fmt.Errorf("update order assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// PlaceOrder валидирует и сохраняет новый заказ, возвращает его идентификатор.
func (s *Service) PlaceOrder(ctx context.Context, orderModify entities.OrderModify) (string, error) {
	if orderModify.CustomerName == nil ||
		orderModify.DeliveryAddress == nil ||
		orderModify.OrderConfirmation == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidText(*orderModify.CustomerName) {
		return "", ErrInvalidCustomerName
	}
	if !isValidText(*orderModify.DeliveryAddress) {
		return "", ErrInvalidDeliveryAddress
	}
	if !isValidText(*orderModify.OrderConfirmation) {
		return "", ErrInvalidConfirmation
	}
	for i, item := range orderModify.ItemsOrdered {
		if !isValidLineItem(item) {
			return "", fmt.Errorf("item %d: %w", i, ErrInvalidLineItem)
		}
	}

	if orderModify.Status == nil {
		status := entities.DefaultOrderStatus
		orderModify.Status = &status
	}
	if !orderModify.Status.IsValid() {
		return "", ErrInvalidStatus
	}
	if orderModify.AssignedTo == nil {
		assignedTo := ""
		orderModify.AssignedTo = &assignedTo
	}
	if orderModify.Status.RequiresAssignment() && *orderModify.AssignedTo == "" {
		return "", ErrInvalidTransition
	}
	if orderModify.OrderDateTime == nil {
		now := time.Now().UTC()
		orderModify.OrderDateTime = &now
	}
	if orderModify.ItemsOrdered == nil {
		orderModify.ItemsOrdered = []entities.LineItem{}
	}

	id := uuid.NewString()
	orderModify.ID = &id

	createdID, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	return createdID, nil
}

func (s *Service) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return counts, nil
}

func (s *Service) publishStatusChanged(ctx context.Context, order *entities.Order, previousStatus entities.OrderStatusType) {
	event := entities.OrderStatusChanged{
		OrderID:           order.ID,
		OrderConfirmation: order.OrderConfirmation,
		PreviousStatus:    previousStatus,
		Status:            order.Status,
		AssignedTo:        order.AssignedTo,
		ChangedAt:         time.Now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.Warn("failed to publish order status changed event",
			logger.NewField("order_id", order.ID),
			logger.NewField("status", order.Status.String()),
			logger.NewField("error", err),
		)
	}
}
