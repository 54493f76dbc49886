package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/current_orders_get"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/order_assign_post"
	"dispatch/internal/handlers/rest/order_history_get"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/status_change_post"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	envErr := dotenv.Load(".env")
	if err := dotenv.ApplyFlags(os.Args[0], os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to apply flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("component", "main"))

	mainLog.Info("starting dispatch service")

	switch {
	case errors.Is(envErr, dotenv.ErrNoEnvFile):
		mainLog.Warn("No .env file found, using system environment variables")
	case envErr != nil:
		mainLog.Error("failed to load .env file", logger.NewField("error", envErr))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("component", "run"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
	} else {
		runLog.Info("kafka disabled, order status events are not published")
	}

	// workersCtx отменяется при завершении run, после него фоновые задачи дожидаются Wait.
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.BackgroundWorkers.Wait()
	defer stopWorkers()

	if cfg.Orders.SeedDisabled {
		runLog.Info("demo data seeding disabled")
	} else {
		result, err := businessApp.ServiceSeed.Seed(ctx)
		if err != nil {
			runLog.Error("failed to seed demo data", logger.NewField("error", err))
		} else {
			runLog.Info("demo data seeded",
				logger.NewField("orders", result.OrdersInserted),
				logger.NewField("drivers", result.DriversInserted),
			)
		}
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/", orders_get.New(log, app.ServiceOrder, app.Renderer)).Methods("GET")
	router.Handle("/order-history", order_history_get.New(log, app.ServiceOrder, app.Renderer)).Methods("GET")
	router.Handle("/current-orders", current_orders_get.New(log, app.ServiceOrder, app.Renderer)).Methods("GET")
	router.Handle("/changeStatus", status_change_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/assignOrder", order_assign_post.New(log, app.ServiceOrder)).Methods("POST")

	router.Handle("/drivers", drivers_get.New(log, app.ServiceDriver)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
