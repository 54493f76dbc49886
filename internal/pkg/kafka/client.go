package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// ParseBrokers разбирает KAFKA_BROKERS вида "host1:9092, host2:9092".
func ParseBrokers(raw string) []string {
	parts := strings.Split(raw, ",")

	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func parseVersion(versionStr string) (sarama.KafkaVersion, error) {
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return sarama.KafkaVersion{}, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	return version, nil
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Kafka connection")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}
