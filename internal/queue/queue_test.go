package queue

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := New()
	for i := 1; i <= 5; i++ {
		q.Enqueue(&domain.NotificationTarget{ID: i})
	}
	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}

	for i := 1; i <= 5; i++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() empty at item %d", i)
		}
		if got.ID != i {
			t.Fatalf("Pop() id = %d, want %d", got.ID, i)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop() on empty queue should report empty")
	}
}

func TestQueue_AtMostOnceUnderConcurrentPop(t *testing.T) {
	t.Parallel()

	const items = 1000
	q := New()
	for i := 0; i < items; i++ {
		q.Enqueue(&domain.NotificationTarget{ID: i})
	}

	var (
		mu   sync.Mutex
		seen = make(map[int]int)
		wg   sync.WaitGroup
	)
	for c := 0; c < 8; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				target, ok := q.Pop()
				if !ok {
					return
				}
				mu.Lock()
				seen[target.ID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != items {
		t.Fatalf("popped %d distinct items, want %d", len(seen), items)
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("item %d popped %d times", id, count)
		}
	}
}

// countingDispatcher records how many items reached dispatch.
type countingDispatcher struct {
	mu    sync.Mutex
	ids   []int
	panic bool
}

func (d *countingDispatcher) Dispatch(_ context.Context, target domain.NotificationTarget) {
	d.mu.Lock()
	d.ids = append(d.ids, target.ID)
	d.mu.Unlock()
	if d.panic {
		panic("provider blew up")
	}
}

func (d *countingDispatcher) dispatched() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int(nil), d.ids...)
}

func TestWorker_DrainsInOrderAndSkipsSentinels(t *testing.T) {
	t.Parallel()

	q := New()
	q.Enqueue(&domain.NotificationTarget{ID: 1})
	q.Enqueue(nil)
	q.Enqueue(&domain.NotificationTarget{ID: 2})

	d := &countingDispatcher{}
	w := NewWorker(q, d, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for q.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("worker did not drain the queue in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done

	got := d.dispatched()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("dispatched = %v, want [1 2]", got)
	}
	if w.Alive() {
		t.Error("worker should report dead after Run returns")
	}
}

func TestWorker_SurvivesDispatchPanic(t *testing.T) {
	t.Parallel()

	q := New()
	q.Enqueue(&domain.NotificationTarget{ID: 1})
	q.Enqueue(&domain.NotificationTarget{ID: 2})

	d := &countingDispatcher{panic: true}
	w := NewWorker(q, d, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for len(d.dispatched()) < 2 {
		select {
		case <-deadline:
			t.Fatalf("worker stopped after panic, dispatched = %v", d.dispatched())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestWorker_AliveWhileRunning(t *testing.T) {
	t.Parallel()

	w := NewWorker(New(), &countingDispatcher{}, 10*time.Millisecond)
	if w.Alive() {
		t.Fatal("worker should start dead")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for !w.Alive() {
		select {
		case <-deadline:
			t.Fatal("worker never reported alive")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
	if w.Alive() {
		t.Error("worker should report dead after shutdown")
	}
}
