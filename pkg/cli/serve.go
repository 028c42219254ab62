package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/cli/config"
	controller "github.com/secmon-lab/themis/pkg/controller/http"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		directoryCfg config.Directory
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		syncCfg      config.Sync
	)

	flags := slices.Concat(
		serverCfg.Flags(),
		directoryCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		syncCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server with optional periodic sync",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting themis server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("directory", directoryCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.Any("sync", syncCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			syncUC := newSyncUseCase(&directoryCfg, &slackCfg, repo, logger)

			// Periodic sync needs a targets file
			var targets []model.SyncTarget
			if syncCfg.Interval > 0 {
				if !syncCfg.IsConfigured() {
					return goerr.New("periodic sync requires a targets file. Please set THEMIS_SYNC_TARGETS")
				}
				cfg, err := syncCfg.LoadTargets()
				if err != nil {
					return err
				}
				targets = cfg.Targets
			}

			server := controller.NewServer(ctx, serverCfg.Addr, syncUC)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			stopTicker := func() {}
			if syncCfg.Interval > 0 {
				stopTicker = startPeriodicSync(ctx, syncUC, targets, directoryCfg.FallbackToken(), syncCfg.Interval)
			}

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			stopTicker()

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// startPeriodicSync runs the targets on a fixed interval until the
// returned stop function is called. Each run is dispatched off the
// ticker goroutine; targets within a run stay sequential, and at most
// one run is in flight at a time. A tick that fires while the previous
// run is still going (e.g. under throttling backoff) is skipped rather
// than stacking a concurrent run.
func startPeriodicSync(ctx context.Context, syncUC interfaces.SyncUseCase, targets []model.SyncTarget, fallbackToken types.AccessToken, interval time.Duration) func() {
	logger := ctxlog.From(ctx)
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	running := make(chan struct{}, 1)

	logger.Info("Periodic sync enabled",
		slog.Duration("interval", interval),
		slog.Int("targets", len(targets)),
	)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case running <- struct{}{}:
					async.Dispatch(ctx, func(ctx context.Context) error {
						defer func() { <-running }()
						return runSyncTargets(ctx, syncUC, targets, fallbackToken)
					})
				default:
					logger.Warn("Previous sync run still in flight, skipping this tick")
				}
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
