package kafka

import (
	"context"
	"fmt"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	"github.com/IBM/sarama"
)

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := parseVersion(versionStr)
	if err != nil {
		return nil, err
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	// ретраи делает gateway через backoff
	cfg.Producer.Retry.Max = 0

	return cfg, nil
}

func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := ParseBrokers(cfg.Brokers)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.OrderStatusTopic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer created")
	return producer, nil
}
