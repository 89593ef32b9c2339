package queue

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/pkg/worker"
)

// Supervisor periodically checks worker liveness, restarts a dead
// worker on the dispatch pool, and logs the queue depth each cycle.
type Supervisor struct {
	queue    *Queue
	worker   *Worker
	pools    *worker.Pools
	interval time.Duration
}

// NewSupervisor creates a supervisor with the given check interval.
func NewSupervisor(q *Queue, w *Worker, pools *worker.Pools, interval time.Duration) *Supervisor {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &Supervisor{queue: q, worker: w, pools: pools, interval: interval}
}

// Run checks liveness until the context is cancelled.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		depth := s.queue.Len()
		logger.Info("Notification queue status",
			zap.Int("queue_length", depth),
			zap.Bool("worker_alive", s.worker.Alive()),
		)

		if !s.worker.Alive() {
			logger.Warn("Dispatch worker is down, restarting",
				zap.Int("queue_length", depth),
			)
			if err := s.pools.SubmitDetached("dispatch", s.worker.Run); err != nil {
				logger.Error("Failed to restart dispatch worker", zap.Error(err))
			}
		}
	}
}
