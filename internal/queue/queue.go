// Package queue holds the in-memory fan-out pipeline: an unbounded FIFO
// shared between the ingestion API (producer) and the dispatch worker
// (consumer), plus the supervisor that keeps the worker alive.
//
// The queue has no durable backing store. Items enqueued but not yet
// dispatched are lost if the process crashes; delivery is at-most-once
// by design. Known limitation: surviving restarts would need an
// external broker or append-only log behind the same interface.
package queue

import (
	"sync"

	"sky-herald.io/herald/internal/domain"
)

// Queue is an unbounded FIFO of dispatch-ready notification targets.
// A nil item is a legal sentinel; consumers skip it.
type Queue struct {
	mu    sync.Mutex
	items []*domain.NotificationTarget
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue appends one item to the tail.
func (q *Queue) Enqueue(target *domain.NotificationTarget) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, target)
}

// Pop removes and returns the head item. The second return value is
// false when the queue is empty. Popping is serialized by the queue's
// lock, so an item is handed to exactly one consumer.
func (q *Queue) Pop() (*domain.NotificationTarget, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Len returns the current queue depth.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
