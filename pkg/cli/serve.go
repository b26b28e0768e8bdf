package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/aster-works/agora/pkg/cli/config"
	httpctrl "github.com/aster-works/agora/pkg/controller/http"
	"github.com/aster-works/agora/pkg/service/worker"
	"github.com/aster-works/agora/pkg/usecase"
	"github.com/aster-works/agora/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var reconcileInterval time.Duration
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var authnCfg config.Authn
	var mailCfg config.Mail

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("AGORA_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "reconcile-interval",
			Usage:       "Interval of the enrollment counter reconcile worker (0 disables it)",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("AGORA_RECONCILE_INTERVAL"),
			Destination: &reconcileInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, authnCfg.Flags()...)
	flags = append(flags, mailCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			policy, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load membership policy")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			authnSvc, err := authnCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}

			mailer, err := mailCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure mail delivery")
			}

			uc := usecase.New(repo,
				usecase.WithPolicy(policy),
				usecase.WithMailer(mailer),
			)

			var reconcileWorker *worker.EnrollmentReconcileWorker
			if reconcileInterval > 0 {
				reconcileWorker = worker.NewEnrollmentReconcileWorker(repo, reconcileInterval)
				if err := reconcileWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start enrollment reconcile worker")
				}
			}

			httpHandler := httpctrl.New(uc, httpctrl.WithAuthn(authnSvc))
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if reconcileWorker != nil {
					reconcileWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
