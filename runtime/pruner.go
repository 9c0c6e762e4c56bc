package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type snapshotPruneStore interface {
	Prune(ctx context.Context, keep int) (int, error)
}

// SnapshotPruner deletes old model generations on a cron schedule,
// keeping the newest ones and always the active one.
type SnapshotPruner struct {
	store    snapshotPruneStore
	keep     int
	schedule string
	log      *slog.Logger
}

// NewSnapshotPruner validates the 5-field cron expression up front.
func NewSnapshotPruner(store snapshotPruneStore, keep int, schedule string, log *slog.Logger) (*SnapshotPruner, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", schedule, err)
	}
	return &SnapshotPruner{store: store, keep: keep, schedule: schedule, log: log}, nil
}

func (p *SnapshotPruner) Run(ctx context.Context) error {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(p.schedule, func() { p.PruneOnce(ctx) }); err != nil {
		return err
	}
	scheduler.Start()
	p.log.Info("Snapshot pruning scheduled", "cron", p.schedule, "keep", p.keep)

	<-ctx.Done()
	<-scheduler.Stop().Done()
	return ctx.Err()
}

func (p *SnapshotPruner) PruneOnce(ctx context.Context) {
	deleted, err := p.store.Prune(ctx, p.keep)
	if err != nil {
		p.log.Error("Snapshot pruning failed", "error", err)
		return
	}
	if deleted > 0 {
		p.log.Info("Old snapshots pruned", "deleted", deleted, "kept", p.keep)
	}
}
