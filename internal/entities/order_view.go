package entities

import "github.com/shopspring/decimal"

// OrderView заказ, подготовленный для отображения.
type OrderView struct {
	Order
	FormattedOrderDateTime string
	OrderTotal             decimal.Decimal
	Flags                  *OrderStatusFlags // nil когда флаги не нужны (история, текущие)
	DriverName             string
	DriverLicensePlate     string
}

type OrderStatusFlags struct {
	IsReceived  bool
	IsDelivered bool
	IsAssigned  bool
}

type OrderListing struct {
	Orders        []OrderView
	IsEmptyOrders bool
}

func (v OrderView) HasDriver() bool {
	return v.DriverLicensePlate != ""
}

func (v OrderView) ItemNames() []string {
	names := make([]string, 0, len(v.ItemsOrdered))
	for _, item := range v.ItemsOrdered {
		names = append(names, item.Name)
	}
	return names
}
