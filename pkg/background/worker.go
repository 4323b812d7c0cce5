package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"parcel-service/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info описание задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker запускает набор задач и держит их до отмены контекста.
type Worker struct {
	log   workerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи (каждая выполняется один раз синхронно) и запускает
// их периодическое выполнение. Ошибка или паника на прогреве возвращается
// вызывающему, периодические ошибки только логируются.
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
		initGroup.Go(func() error {
			log.Info("initializing background task",
				logger.NewField("task", task.Info()),
			)
			return worker.runOnce(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.loop(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется до остановки всех задач.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("ttl", ttl.String()),
		)
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("stopping background task")
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task); err != nil {
				taskLog.Error("background task failed",
					logger.NewField("error", err),
				)
			}
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %q panic: %v", task.Info(), r)
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	return task.Do(ctx)
}
