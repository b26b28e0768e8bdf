package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/repository/memory"
	"github.com/aster-works/agora/pkg/service/worker"
)

func TestReconcileRepairsDrift(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	ev, err := repo.Event().Create(ctx, &model.Event{Title: "Camp", Visible: true})
	gt.NoError(t, err).Required()

	form, err := repo.Form().Create(ctx, &model.FormDefinition{
		Title:  "Signup",
		Fields: []model.FormField{{ID: "f1", Label: "A", Type: types.FieldTypeShortText}},
	})
	gt.NoError(t, err).Required()

	for _, user := range []types.UserID{"u1", "u2", "u3"} {
		_, err := repo.Response().Submit(ctx, &model.Response{
			EventID:  ev.ID,
			FormID:   form.ID,
			UserID:   user,
			Snapshot: *form,
		})
		gt.NoError(t, err).Required()
	}

	// Corrupt the counter to simulate drift.
	gt.NoError(t, repo.Event().SetEnrolled(ctx, ev.ID, 10))

	w := worker.NewEnrollmentReconcileWorker(repo, time.Minute)
	gt.NoError(t, w.Reconcile(ctx))

	repaired, err := repo.Event().Get(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, repaired.Enrolled).Equal(3)
}

func TestReconcileLeavesAccurateCounters(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	ev, err := repo.Event().Create(ctx, &model.Event{Title: "Dinner", Visible: true})
	gt.NoError(t, err).Required()

	w := worker.NewEnrollmentReconcileWorker(repo, time.Minute)
	gt.NoError(t, w.Reconcile(ctx))

	after, err := repo.Event().Get(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, after.Enrolled).Equal(0)
}

func TestWorkerStartStop(t *testing.T) {
	repo := memory.New()
	w := worker.NewEnrollmentReconcileWorker(repo, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gt.NoError(t, w.Start(ctx))
	time.Sleep(30 * time.Millisecond)
	w.Stop()
}
