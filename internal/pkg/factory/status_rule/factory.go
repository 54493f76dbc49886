package status_rule

import (
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

// StatusRuleFactory выдает проверку, которую заказ должен пройти перед переходом в статус.
// Переходы не обязаны идти вперед по жизненному циклу.
type StatusRuleFactory struct{}

func NewStatusRuleFactory() *StatusRuleFactory {
	return &StatusRuleFactory{}
}

func (f *StatusRuleFactory) GetRule(status entities.OrderStatusType) (order.CheckFn, error) {
	switch status {
	case entities.OrderReceived, entities.OrderReadyForDelivery:
		return f.anyOrder, nil
	case entities.OrderInTransit, entities.OrderDelivered:
		return f.assignedOrder, nil
	default:
		return nil, fmt.Errorf("%w: %q", order.ErrInvalidStatus, status)
	}
}

func (f *StatusRuleFactory) anyOrder(_ *entities.Order) error {
	return nil
}

func (f *StatusRuleFactory) assignedOrder(o *entities.Order) error {
	if !o.IsAssigned() {
		return order.ErrInvalidTransition
	}
	return nil
}
