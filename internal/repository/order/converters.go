package order

import (
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	items, err := itemsToDomain(o.ItemsOrdered)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.ID, err)
	}

	return &entities.Order{
		ID:                o.ID,
		CustomerName:      o.CustomerName,
		DeliveryAddress:   o.DeliveryAddress,
		ItemsOrdered:      items,
		OrderDateTime:     o.OrderDateTime,
		Status:            entities.OrderStatusType(o.Status),
		OrderConfirmation: o.OrderConfirmation,
		AssignedTo:        o.AssignedTo,
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}

func FromDomain(o *entities.Order) (*OrderDB, error) {
	items, err := itemsFromDomain(o.ItemsOrdered)
	if err != nil {
		return nil, err
	}

	return &OrderDB{
		ID:                o.ID,
		CustomerName:      o.CustomerName,
		DeliveryAddress:   o.DeliveryAddress,
		ItemsOrdered:      items,
		OrderDateTime:     o.OrderDateTime,
		Status:            o.Status.String(),
		OrderConfirmation: o.OrderConfirmation,
		AssignedTo:        o.AssignedTo,
	}, nil
}

func FromDomainModify(orderModify *entities.OrderModify) (*OrderModifyDB, error) {
	if orderModify == nil {
		return nil, nil
	}

	orderDB := &OrderModifyDB{
		ID:                orderModify.ID,
		CustomerName:      orderModify.CustomerName,
		DeliveryAddress:   orderModify.DeliveryAddress,
		OrderDateTime:     orderModify.OrderDateTime,
		OrderConfirmation: orderModify.OrderConfirmation,
		AssignedTo:        orderModify.AssignedTo,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.ItemsOrdered != nil {
		items, err := itemsFromDomain(orderModify.ItemsOrdered)
		if err != nil {
			return nil, err
		}
		orderDB.ItemsOrdered = items
	}

	return orderDB, nil
}

func itemsToDomain(raw []byte) ([]entities.LineItem, error) {
	if len(raw) == 0 {
		return []entities.LineItem{}, nil
	}

	var itemsDB []LineItemDB
	if err := json.Unmarshal(raw, &itemsDB); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]entities.LineItem, len(itemsDB))
	for i, item := range itemsDB {
		items[i] = entities.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return items, nil
}

func itemsFromDomain(items []entities.LineItem) ([]byte, error) {
	itemsDB := make([]LineItemDB, len(items))
	for i, item := range items {
		itemsDB[i] = LineItemDB{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	raw, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return raw, nil
}
