package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"sky-herald.io/herald/internal/api/handlers"
	"sky-herald.io/herald/internal/dispatch"
	"sky-herald.io/herald/internal/jobs"
	"sky-herald.io/herald/internal/notification"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/pkg/worker"
	"sky-herald.io/herald/internal/prefs"
	"sky-herald.io/herald/internal/provider"
	"sky-herald.io/herald/internal/queue"
)

// NotifierModule owns the fan-out pipeline: materializer, dispatch queue,
// channel providers, the queue worker, and its supervisor.
type NotifierModule struct {
	infra *Infrastructure

	Ingest     *notification.IngestService
	Queue      *queue.Queue
	Worker     *queue.Worker
	Supervisor *queue.Supervisor
}

// NewNotifierModule builds the full pipeline from configuration. Provider
// adapters are constructed once here; channels without configuration stay
// nil and the resolver blocks them process-wide.
func NewNotifierModule(ctx context.Context, infra *Infrastructure) (*NotifierModule, error) {
	cfg := infra.Config

	providers := dispatch.Providers{
		Slack:  provider.NewSlackWebhook(),
		Pusher: provider.NewPushRelay(cfg.Notifier.PushRelayURL),
	}
	if cfg.Notifier.EmailService == "ses" {
		email, err := provider.NewSESEmailSender(ctx, cfg.Notifier.SESRegion, cfg.Notifier.EmailFrom)
		if err != nil {
			return nil, fmt.Errorf("init ses email sender: %w", err)
		}
		providers.Email = email
	}
	if cfg.Notifier.TwilioAccountSID != "" {
		providers.Texter = provider.NewTwilioTexter(cfg.Notifier)
	}
	logger.Info("Notifier providers configured",
		zap.Bool("email", providers.Email != nil),
		zap.Bool("twilio", providers.Texter != nil),
		zap.String("push_relay", cfg.Notifier.PushRelayURL),
	)

	resolver := prefs.NewResolver(cfg.Notifier)
	shifts := notification.NewEntShiftLookup(infra.EntClient)
	dispatcher := dispatch.NewDispatcher(resolver, shifts, providers, cfg.App.Title)

	q := queue.New()
	materializer := notification.NewMaterializer(infra.EntClient)

	return &NotifierModule{
		infra:      infra,
		Ingest:     notification.NewIngestService(materializer, q),
		Queue:      q,
		Worker:     queue.NewWorker(q, dispatcher, cfg.Notifier.QueuePollInterval),
		Supervisor: nil, // set in StartBackground once pools are live
	}, nil
}

// Name implements Module.
func (m *NotifierModule) Name() string { return "notifier" }

// ContributeServerDeps implements Module.
func (m *NotifierModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Ingestor = m.Ingest
}

// RegisterWorkers implements Module.
func (m *NotifierModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient,
		m.infra.Config.Notifier.Retention,
	))
}

// StartBackground launches the queue worker and its supervisor on the
// dispatch pool. The supervisor resubmits the worker if it ever exits
// while the service is still running.
func (m *NotifierModule) StartBackground(pools *worker.Pools) error {
	m.Supervisor = queue.NewSupervisor(m.Queue, m.Worker, pools, m.infra.Config.Notifier.SupervisorInterval)

	if err := pools.SubmitDetached("dispatch", m.Worker.Run); err != nil {
		return fmt.Errorf("start queue worker: %w", err)
	}
	if err := pools.SubmitDetached("dispatch", m.Supervisor.Run); err != nil {
		return fmt.Errorf("start queue supervisor: %w", err)
	}
	return nil
}

// Shutdown implements Module. The queue is in-memory; targets still queued
// at shutdown are lost, which matches the at-most-once delivery contract.
func (m *NotifierModule) Shutdown(_ context.Context) error {
	if n := m.Queue.Len(); n > 0 {
		logger.Warn("Shutting down with undelivered notifications in queue",
			zap.Int("queue_length", n),
		)
	}
	return nil
}
