package order

import (
	"strings"

	"dispatch/internal/entities"
	"github.com/google/uuid"
)

// parseOrderID приводит идентификатор к канонической форме, ok=false для невалидного UUID.
func parseOrderID(id string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func isValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isValidLineItem(item entities.LineItem) bool {
	return isValidText(item.Name) && item.Quantity > 0 && !item.Price.IsNegative()
}
