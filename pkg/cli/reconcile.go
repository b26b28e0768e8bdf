package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/aster-works/agora/pkg/cli/config"
	"github.com/aster-works/agora/pkg/service/worker"
	"github.com/aster-works/agora/pkg/utils/logging"
)

// cmdReconcile runs a single enrollment counter reconciliation pass and
// exits. Useful after manual data repairs.
func cmdReconcile() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:    "reconcile",
		Aliases: []string{"r"},
		Usage:   "Recompute enrollment counters from stored responses",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			w := worker.NewEnrollmentReconcileWorker(repo, time.Minute)
			if err := w.Reconcile(ctx); err != nil {
				return goerr.Wrap(err, "reconciliation failed")
			}

			logging.Default().Info("Reconciliation completed")
			return nil
		},
	}
}
