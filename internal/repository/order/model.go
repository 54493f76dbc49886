package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                string
	CustomerName      string
	DeliveryAddress   string
	ItemsOrdered      []byte // jsonb
	OrderDateTime     time.Time
	Status            string
	OrderConfirmation string
	AssignedTo        string
}

type OrderModifyDB struct {
	ID                *string
	CustomerName      *string
	DeliveryAddress   *string
	ItemsOrdered      []byte
	OrderDateTime     *time.Time
	Status            *string
	OrderConfirmation *string
	AssignedTo        *string
}

type LineItemDB struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
