package entities

import "time"

// OrderStatusChanged публикуется после успешной смены статуса заказа.
type OrderStatusChanged struct {
	OrderID           string          `json:"orderId"`
	OrderConfirmation string          `json:"orderConfirmation"`
	PreviousStatus    OrderStatusType `json:"previousStatus"`
	Status            OrderStatusType `json:"status"`
	AssignedTo        string          `json:"assignedTo"`
	ChangedAt         time.Time       `json:"changedAt"`
}
