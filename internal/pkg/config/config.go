package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort                  = "8080"
	defaultRequestTimeout        = 5 * time.Second
	defaultRateLimiterQPS        = 100
	defaultRateLimiterBurst      = 200
	defaultOrderStatsInterval    = 30 * time.Second
	defaultOrderPlacedTimeout    = 5 * time.Second
	defaultKafkaSaramaVersion    = "3.6.0"
	defaultKafkaOrderStatusTopic = "order.status.changed"
)

type (
	Tasks struct {
		OrderStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		URL      string // DATABASE_URL, имеет приоритет над остальными полями
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Orders struct {
		DateLayout   string
		Timezone     *time.Location
		SeedDisabled bool
	}

	Log struct {
		Level    string
		Encoding string
	}

	Kafka struct {
		Enabled          bool
		PortHealthcheck  string
		Brokers          string
		OrderStatusTopic string
		OrderPlacedTopic string
		ConsumerGroup    string
		Sarama           Sarama
		Handlers         KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderPlaced OrderPlaced
	}

	OrderPlaced struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Orders   Orders
		Log      Log
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// ValidateWorker проверяет настройки, нужные только воркеру orders.placed.
func (c *Config) ValidateWorker() error {
	if c.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if c.Kafka.OrderPlacedTopic == "" {
		return errors.New("KAFKA_ORDER_PLACED_TOPIC is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	return nil
}

func loadFromEnv() (*Config, error) {
	orderStatsInterval, err := osGetEnvDuration("BACKGROUND_ORDER_STATS_INTERVAL", defaultOrderStatsInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", defaultRateLimiterQPS)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", defaultRateLimiterBurst)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	seedDisabled, err := osGetBool("SEED_DISABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timezone, err := osGetLocation("ORDERS_TIMEZONE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderPlacedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_PLACED_PROCESS_TIMEOUT", defaultOrderPlacedTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrderStatsInterval: orderStatsInterval,
		},
		Server: HTTPServer{
			Port:             osGetString("PORT", defaultPort),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Orders: Orders{
			DateLayout:   os.Getenv("ORDERS_DATE_LAYOUT"),
			Timezone:     timezone,
			SeedDisabled: seedDisabled,
		},
		Log: Log{
			Level:    os.Getenv("LOG_LEVEL"),
			Encoding: os.Getenv("LOG_ENCODING"),
		},
		Kafka: Kafka{
			Enabled:          kafkaEnabled,
			Brokers:          os.Getenv("KAFKA_BROKERS"),
			OrderStatusTopic: osGetString("KAFKA_ORDER_STATUS_TOPIC", defaultKafkaOrderStatusTopic),
			OrderPlacedTopic: os.Getenv("KAFKA_ORDER_PLACED_TOPIC"),
			ConsumerGroup:    os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:  os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   osGetString("KAFKA_SARAMA_VERSION", defaultKafkaSaramaVersion),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderPlaced: OrderPlaced{
					ProcessTimeout: orderPlacedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.OrderStatsInterval <= 0 {
		return errors.New("BACKGROUND_ORDER_STATS_INTERVAL must be positive")
	}

	if cfg.Kafka.Enabled && cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.URL != "" {
		return nil
	}

	if db.Host == "" {
		return errors.New("DATABASE_URL or POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetString(s string, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string, fallback int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetLocation(s string) (*time.Location, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(val)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone for %s=%q: %w", s, val, err)
	}
	return loc, nil
}
