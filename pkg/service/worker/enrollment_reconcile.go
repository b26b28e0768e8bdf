package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/utils/logging"
)

// EnrollmentReconcileWorker periodically recomputes each event's
// enrollment counter from the stored responses. The counter is advanced
// transactionally on submit, so drift only appears after manual data
// surgery or response deletion; this worker repairs it.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type EnrollmentReconcileWorker struct {
	repo     interfaces.Repository
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewEnrollmentReconcileWorker(repo interfaces.Repository, interval time.Duration) *EnrollmentReconcileWorker {
	return &EnrollmentReconcileWorker{
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background loop. Does not block server startup.
func (w *EnrollmentReconcileWorker) Start(ctx context.Context) error {
	logging.Default().Info("enrollment reconcile worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion.
func (w *EnrollmentReconcileWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("enrollment reconcile worker stopped")
}

func (w *EnrollmentReconcileWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Reconcile(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("enrollment reconcile failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("enrollment reconcile worker context cancelled")
			return
		}
	}
}

// Reconcile performs a single reconciliation cycle over all events. It
// is also invoked directly by the reconcile command.
func (w *EnrollmentReconcileWorker) Reconcile(ctx context.Context) error {
	startTime := time.Now()

	events, err := w.repo.Event().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list events")
	}

	var repaired int
	for _, ev := range events {
		count, err := w.repo.Response().CountByEvent(ctx, ev.ID)
		if err != nil {
			return goerr.Wrap(err, "failed to count responses", goerr.V("event_id", ev.ID))
		}

		if count == ev.Enrolled {
			continue
		}

		logging.From(ctx).Warn("enrollment counter drift detected",
			"event_id", ev.ID,
			"stored", ev.Enrolled,
			"actual", count)

		if err := w.repo.Event().SetEnrolled(ctx, ev.ID, count); err != nil {
			return goerr.Wrap(err, "failed to repair enrollment counter", goerr.V("event_id", ev.ID))
		}
		repaired++
	}

	logging.From(ctx).Info("enrollment reconcile finished",
		"events", len(events),
		"repaired", repaired,
		"duration", time.Since(startTime).String())

	return nil
}
