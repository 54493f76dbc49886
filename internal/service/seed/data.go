package seed

import (
	"time"

	"dispatch/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	tacoPrice   = decimal.RequireFromString("2.99")
	burgerPrice = decimal.RequireFromString("4.99")
)

// ExampleOrders возвращает демонстрационные заказы с датами now+0..5 минут.
// OPQ-123 намеренно не имеет водителя в ExampleDrivers.
func ExampleOrders(now time.Time) []entities.Order {
	return []entities.Order{
		{
			ID:                uuid.NewString(),
			CustomerName:      "John Doe",
			DeliveryAddress:   "123 Main Street, City, State",
			ItemsOrdered:      []entities.LineItem{{Name: "Taco", Quantity: 2, Price: tacoPrice}},
			OrderDateTime:     now,
			Status:            entities.OrderReceived,
			OrderConfirmation: "abc123",
		},
		{
			ID:                uuid.NewString(),
			CustomerName:      "Jane Smith",
			DeliveryAddress:   "456 Elm Street, Town, State",
			ItemsOrdered:      []entities.LineItem{{Name: "Taco", Quantity: 1, Price: tacoPrice}},
			OrderDateTime:     now.Add(1 * time.Minute),
			Status:            entities.OrderReadyForDelivery,
			OrderConfirmation: "def456",
			AssignedTo:        "XYZ-123",
		},
		{
			ID:                uuid.NewString(),
			CustomerName:      "Alice Johnson",
			DeliveryAddress:   "789 Oak Avenue, Village, State",
			ItemsOrdered:      []entities.LineItem{{Name: "Burger", Quantity: 3, Price: burgerPrice}},
			OrderDateTime:     now.Add(2 * time.Minute),
			Status:            entities.OrderInTransit,
			OrderConfirmation: "ghi789",
			AssignedTo:        "ABC-789",
		},
		{
			ID:                uuid.NewString(),
			CustomerName:      "Bob Wilson",
			DeliveryAddress:   "101 Pine Street, Hamlet, State",
			ItemsOrdered:      []entities.LineItem{{Name: "Burger", Quantity: 2, Price: burgerPrice}},
			OrderDateTime:     now.Add(3 * time.Minute),
			Status:            entities.OrderDelivered,
			OrderConfirmation: "jkl101",
			AssignedTo:        "DEF-456",
		},
		{
			ID:                uuid.NewString(),
			CustomerName:      "Eve Johnson",
			DeliveryAddress:   "789 Oak Avenue, Village, State",
			ItemsOrdered:      []entities.LineItem{{Name: "Taco", Quantity: 3, Price: tacoPrice}},
			OrderDateTime:     now.Add(4 * time.Minute),
			Status:            entities.OrderReadyForDelivery,
			OrderConfirmation: "mno456",
		},
		{
			ID:                uuid.NewString(),
			CustomerName:      "Charlie Brown",
			DeliveryAddress:   "101 Pine Street, Hamlet, State",
			ItemsOrdered:      []entities.LineItem{{Name: "Taco", Quantity: 2, Price: tacoPrice}},
			OrderDateTime:     now.Add(5 * time.Minute),
			Status:            entities.OrderInTransit,
			OrderConfirmation: "pqr101",
			AssignedTo:        "OPQ-123",
		},
	}
}

// ExampleDrivers возвращает водителей с паролями в открытом виде, хешируются при сидинге.
func ExampleDrivers() []entities.Driver {
	return []entities.Driver{
		{
			Username:     "xyoung",
			Password:     "xyoung-demo",
			FullName:     "Xavier Young",
			VehicleModel: "Toyota Prius",
			Color:        "Silver",
			LicensePlate: "XYZ-123",
		},
		{
			Username:     "abrooks",
			Password:     "abrooks-demo",
			FullName:     "Amelia Brooks",
			VehicleModel: "Honda Civic",
			Color:        "Blue",
			LicensePlate: "ABC-789",
		},
		{
			Username:     "dfoster",
			Password:     "dfoster-demo",
			FullName:     "Daniel Foster",
			VehicleModel: "Ford Transit",
			Color:        "White",
			LicensePlate: "DEF-456",
		},
	}
}
