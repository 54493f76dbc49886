package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                string
	CustomerName      string
	DeliveryAddress   string
	ItemsOrdered      []LineItem
	OrderDateTime     time.Time
	Status            OrderStatusType
	OrderConfirmation string
	AssignedTo        string // license plate водителя, "" если не назначен
}

type LineItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderStatusType string

const (
	OrderReceived         OrderStatusType = "RECEIVED"
	OrderReadyForDelivery OrderStatusType = "READY FOR DELIVERY"
	OrderInTransit        OrderStatusType = "IN TRANSIT"
	OrderDelivered        OrderStatusType = "DELIVERED"
)

const DefaultOrderStatus = OrderReceived

var OrderStatuses = []OrderStatusType{
	OrderReceived,
	OrderReadyForDelivery,
	OrderInTransit,
	OrderDelivered,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderReceived, OrderReadyForDelivery, OrderInTransit, OrderDelivered:
		return true
	default:
		return false
	}
}

// RequiresAssignment сообщает, что в этот статус заказ переходит только с назначенным водителем.
func (s OrderStatusType) RequiresAssignment() bool {
	return s == OrderInTransit || s == OrderDelivered
}

func (o *Order) IsAssigned() bool {
	return o.AssignedTo != ""
}

type OrderModify struct {
	ID                *string
	CustomerName      *string
	DeliveryAddress   *string
	ItemsOrdered      []LineItem
	OrderDateTime     *time.Time
	Status            *OrderStatusType
	OrderConfirmation *string
	AssignedTo        *string
}

// OrderFilter описывает выборку заказов для листингов.
type OrderFilter struct {
	Statuses        []OrderStatusType
	ExcludeStatuses []OrderStatusType
	SortDesc        bool
}

// CalculateOrderTotal суммирует quantity * price по позициям. Для пустого списка ноль.
func CalculateOrderTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
