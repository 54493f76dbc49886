package tx

import (
	"context"
	"errors"
	"time"

	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgErrSerializationFailure = "40001"

const (
	serializationInitialInterval = 10 * time.Millisecond
	serializationMaxInterval     = 200 * time.Millisecond
	serializationMaxElapsedTime  = 2 * time.Second
	serializationRandomization   = 0.5
	serializationMultiplier      = 2
	serializationMaxRetries      = 3
)

type execFunc func(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	exec    execFunc
	retrier retrier.Retrier
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	internal := manager.Must(pgxv5.NewDefaultFactory(db))

	return &Manager{
		exec: func(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
			txSettings := pgxv5.MustSettings(
				settings.Must(),
				pgxv5.WithTxOptions(opts),
			)
			return internal.DoWithSettings(ctx, txSettings, fn)
		},
		retrier: newSerializationRetrier(),
	}
}

func newSerializationRetrier() retrier.Retrier {
	return backoff_adapter.New(retrier.Config{
		InitialInterval: serializationInitialInterval,
		MaxInterval:     serializationMaxInterval,
		MaxElapsedTime:  serializationMaxElapsedTime,
		Randomization:   serializationRandomization,
		Multiplier:      serializationMultiplier,
		MaxRetries:      serializationMaxRetries,
		ShouldRetry:     isSerializationFailure,
	})
}

// Do выполняет fn в serializable транзакции на запись. При конфликте сериализации (40001)
// транзакция повторяется целиком, fn перечитывает данные и побеждает последний писатель.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.exec(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
	})
}

// DoReadOnly выполняет fn в read-only транзакции repeatable read: все запросы fn видят один снимок.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure
	}
	return false
}
