// Package scheduler runs periodic housekeeping jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"uploader/config"
	"uploader/internal/domain/lifecycle"
	"uploader/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	AuthUsecase usecase.AuthUsecase
}

// RevocationPruner deletes ledger entries for tokens that can no longer be presented.
type RevocationPruner struct {
	cron   *cron.Cron
	auth   usecase.AuthUsecase
	logger *slog.Logger
	clock  func() time.Time
}

// NewRevocationPruner schedules the pruning job when revocation.pruneEnabled is set.
// With pruning disabled it returns a pruner that never runs.
func NewRevocationPruner(params Params) (*RevocationPruner, error) {
	pruner := &RevocationPruner{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		auth:   params.AuthUsecase,
		logger: params.Logger,
		clock:  time.Now,
	}

	revocationCfg := params.Config.Revocation
	if revocationCfg == nil || !revocationCfg.PruneEnabled {
		params.Logger.Info("Revocation ledger pruning disabled")

		return pruner, nil
	}

	if _, err := pruner.cron.AddFunc(revocationCfg.PruneSchedule, pruner.run); err != nil {
		return nil, errors.Wrapf(err, "schedule revocation pruning %q", revocationCfg.PruneSchedule)
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pruner.cron.Start()
			params.Logger.InfoContext(ctx, "Revocation ledger pruning scheduled", slog.String("schedule", revocationCfg.PruneSchedule))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Wait for a running job, but no longer than the stop deadline.
			select {
			case <-pruner.cron.Stop().Done():
			case <-ctx.Done():
			}

			return nil
		},
	})

	return pruner, nil
}

func (p *RevocationPruner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := p.Prune(ctx); err != nil {
		p.logger.Error("Scheduled revocation ledger pruning failed", slog.Any("error", err))
	}
}

// Prune removes every entry whose token expired before now.
func (p *RevocationPruner) Prune(ctx context.Context) (int64, error) {
	deleted, err := p.auth.PruneRevocations(ctx, p.clock().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "prune revocation ledger")
	}

	return deleted, nil
}
