package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"dispatch/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   workerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи (каждая выполняется один раз синхронно) и запускает их периодическое
// выполнение до отмены ctx. Ошибка или паника на прогреве возвращается как ошибка New.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(stack)),
					)
				}
			}()
			log.Info("initializing task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

// Wait блокируется, пока все периодические задачи не завершатся после отмены ctx.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	defer w.wg.Done()

	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
