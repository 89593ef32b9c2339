package queue

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
)

// TargetDispatcher is what the worker runs on each dequeued item.
type TargetDispatcher interface {
	Dispatch(ctx context.Context, target domain.NotificationTarget)
}

// Worker drains the queue sequentially. Per-item failures, including
// panics from dispatch, are logged and never stop the loop; the loop
// exits only when the context is cancelled.
type Worker struct {
	queue        *Queue
	dispatcher   TargetDispatcher
	pollInterval time.Duration

	alive atomic.Bool
}

// NewWorker creates a worker polling the queue at the given interval.
func NewWorker(q *Queue, dispatcher TargetDispatcher, pollInterval time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Worker{queue: q, dispatcher: dispatcher, pollInterval: pollInterval}
}

// Alive reports whether the worker loop is currently running.
func (w *Worker) Alive() bool {
	return w.alive.Load()
}

// Run drains the queue until the context is cancelled. When the queue
// is empty the worker sleeps one poll interval before checking again.
func (w *Worker) Run(ctx context.Context) {
	w.alive.Store(true)
	defer w.alive.Store(false)

	logger.Info("Notification dispatch worker started")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification dispatch worker stopped")
			return
		default:
		}

		target, ok := w.queue.Pop()
		if !ok {
			select {
			case <-ctx.Done():
				logger.Info("Notification dispatch worker stopped")
				return
			case <-time.After(w.pollInterval):
			}
			continue
		}
		if target == nil {
			// Sentinel item, skip.
			continue
		}
		w.dispatchOne(ctx, *target)
	}
}

func (w *Worker) dispatchOne(ctx context.Context, target domain.NotificationTarget) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Dispatch panicked",
				zap.Int("notification_id", target.ID),
				zap.Int("user_id", target.User.ID),
				zap.Any("panic", r),
			)
		}
	}()
	w.dispatcher.Dispatch(ctx, target)
}
