package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task is one unit of periodic work
type Task func(ctx context.Context) error

// Worker runs a task on a fixed interval until stopped
type Worker struct {
	name      string
	task      Task
	interval  time.Duration
	runOnBoot bool
	logger    zerolog.Logger
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        *sync.WaitGroup
}

type Option func(*Worker)

// RunOnStart runs the task once immediately instead of waiting a full interval
func RunOnStart() Option {
	return func(w *Worker) {
		w.runOnBoot = true
	}
}

func New(name string, interval time.Duration, task Task, logger zerolog.Logger, opts ...Option) *Worker {
	w := &Worker{
		name:     name,
		task:     task,
		interval: interval,
		logger:   logger.With().Str("worker", name).Logger(),
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Worker started")

		if w.runOnBoot {
			w.run(ctx)
		}

		for {
			select {
			case <-ticker.C:
				w.run(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *Worker) run(ctx context.Context) {
	w.logger.Debug().Msg("Running task")
	if err := w.task(ctx); err != nil {
		w.logger.Error().Err(err).Msg("Failed to run task")
	}
}

func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
