package cli

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/cli/config"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/service/directory"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSync() *cli.Command {
	var (
		directoryCfg config.Directory
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		syncCfg      config.Sync
	)

	flags := slices.Concat(
		directoryCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		syncCfg.Flags(),
	)

	return &cli.Command{
		Name:      "sync",
		Usage:     "Synchronize directory group memberships once and exit",
		ArgsUsage: "[group-id...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting one-shot sync",
				slog.Any("directory", directoryCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.Any("sync", syncCfg),
			)

			targets, err := resolveTargets(c.Args().Slice(), &syncCfg)
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			syncUC := newSyncUseCase(&directoryCfg, &slackCfg, repo, logger)

			return runSyncTargets(ctx, syncUC, targets, directoryCfg.FallbackToken())
		},
	}
}

// resolveTargets picks explicit group IDs from arguments, falling back to
// the configured targets file.
func resolveTargets(args []string, syncCfg *config.Sync) ([]model.SyncTarget, error) {
	if len(args) > 0 {
		targets := make([]model.SyncTarget, 0, len(args))
		for _, arg := range args {
			targets = append(targets, model.SyncTarget{ID: types.GroupID(arg)})
		}
		return targets, nil
	}

	if !syncCfg.IsConfigured() {
		return nil, goerr.New("no sync targets: pass group IDs as arguments or set THEMIS_SYNC_TARGETS")
	}

	cfg, err := syncCfg.LoadTargets()
	if err != nil {
		return nil, err
	}
	return cfg.Targets, nil
}

// newSyncUseCase assembles the sync use case from configuration
func newSyncUseCase(directoryCfg *config.Directory, slackCfg *config.Slack, repo interfaces.Repository, logger *slog.Logger) *usecase.Sync {
	client := directoryCfg.ConfigureClient()
	svc := directory.NewService(client)
	credential := directoryCfg.ConfigureCredential()

	opts := []usecase.SyncOption{}
	if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
	}

	return usecase.NewSync(repo, svc, credential, opts...)
}

// runSyncTargets synchronizes each target strictly in order. Runs are
// never parallelized because eviction races between concurrent runs on
// the same cache are not coordinated.
func runSyncTargets(ctx context.Context, syncUC interfaces.SyncUseCase, targets []model.SyncTarget, fallbackToken types.AccessToken) error {
	logger := ctxlog.From(ctx)

	var failed []string
	for _, target := range targets {
		count, err := syncUC.SyncGroup(ctx, target.ID, fallbackToken)
		if err != nil {
			logger.Error("Sync failed for group",
				"groupID", target.ID.String(),
				"name", target.Name,
				"error", err,
			)
			failed = append(failed, target.ID.String())
			continue
		}
		logger.Info("Group synchronized",
			"groupID", target.ID.String(),
			"name", target.Name,
			"synced", count,
		)
	}

	if len(failed) > 0 {
		return goerr.New("sync failed for some groups", goerr.V("groupIDs", failed))
	}
	return nil
}
