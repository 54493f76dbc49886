package order_events

import (
	"context"

	"dispatch/internal/entities"
)

// NoopPublisher используется, когда KAFKA_ENABLED=false.
type NoopPublisher struct{}

func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishStatusChanged(context.Context, entities.OrderStatusChanged) error {
	return nil
}
