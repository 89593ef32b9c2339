package notification

import (
	"context"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/queue"
)

// IngestService materializes an event and hands the resulting targets to
// the dispatch queue. It is the single entry point used by the ingestion
// API and by internal producers.
type IngestService struct {
	materializer *Materializer
	queue        *queue.Queue
}

// NewIngestService wires a materializer to the dispatch queue.
func NewIngestService(m *Materializer, q *queue.Queue) *IngestService {
	return &IngestService{materializer: m, queue: q}
}

// Ingest materializes the event's notification records and enqueues each
// one for fan-out. Records are enqueued only after they are persisted, so
// a worker never sees a target without a backing row.
func (s *IngestService) Ingest(ctx context.Context, event domain.Event) (*Result, error) {
	res, err := s.materializer.Materialize(ctx, event)
	if err != nil {
		return res, err
	}
	for i := range res.Targets {
		s.queue.Enqueue(&res.Targets[i])
	}
	if len(res.Targets) > 0 {
		logger.Info("Event ingested",
			zap.String("target_class_name", string(event.Kind)),
			zap.Int("target_id", event.TargetID),
			zap.Int("enqueued", len(res.Targets)),
			zap.Int("queue_length", s.queue.Len()),
		)
	}
	return res, nil
}

// QueueLen reports the current depth of the dispatch queue.
func (s *IngestService) QueueLen() int {
	return s.queue.Len()
}
