package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	eventStatusChanged = "order.status.changed"
	headerEventType    = "event-type"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type Publisher struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Publisher {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryableError,
	}

	return &Publisher{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

// PublishStatusChanged отправляет событие с ключом по id заказа, чтобы события одного заказа шли в одну партицию.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway order events, encode event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(eventStatusChanged)},
		},
		Timestamp: event.ChangedAt,
	}

	err = p.executeWithMetrics(ctx, eventStatusChanged, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway order events, publish %s for order %s: %w", eventStatusChanged, event.OrderID, err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var kerr sarama.KError
	if errors.As(err, &kerr) {
		switch kerr {
		case sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend,
			sarama.ErrLeaderNotAvailable,
			sarama.ErrNotLeaderForPartition,
			sarama.ErrRequestTimedOut:
			return true
		default:
			return false
		}
	}

	return errors.Is(err, sarama.ErrOutOfBrokers)
}

// Порядок: latency metric -> attempts metric -> retrier -> producer
func (p *Publisher) executeWithMetrics(ctx context.Context, event string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(p.topic, event, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(p.topic, event, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "OK"
	}

	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return fmt.Sprintf("KAFKA_%d", int16(kerr))
	}
	return "UNKNOWN"
}
