package order_placed

import (
	"time"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

type placedEvent struct {
	CustomerName      *string      `json:"customerName"`
	DeliveryAddress   *string      `json:"deliveryAddress"`
	ItemsOrdered      []placedItem `json:"itemsOrdered"`
	OrderDateTime     *time.Time   `json:"orderDateTime"`
	OrderConfirmation *string      `json:"orderConfirmation"`
	Status            *string      `json:"status,omitempty"`
	AssignedTo        *string      `json:"assignedTo,omitempty"`
}

type placedItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (e *placedEvent) toModify() entities.OrderModify {
	orderModify := entities.OrderModify{
		CustomerName:      e.CustomerName,
		DeliveryAddress:   e.DeliveryAddress,
		OrderDateTime:     e.OrderDateTime,
		OrderConfirmation: e.OrderConfirmation,
		AssignedTo:        e.AssignedTo,
	}

	if e.Status != nil {
		status := entities.OrderStatusType(*e.Status)
		orderModify.Status = &status
	}

	if e.ItemsOrdered != nil {
		items := make([]entities.LineItem, len(e.ItemsOrdered))
		for i, item := range e.ItemsOrdered {
			items[i] = entities.LineItem{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
			}
		}
		orderModify.ItemsOrdered = items
	}

	return orderModify
}
