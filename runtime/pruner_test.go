package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type pruneStore struct {
	calls []int
	err   error
}

func (p *pruneStore) Prune(_ context.Context, keep int) (int, error) {
	p.calls = append(p.calls, keep)
	return 2, p.err
}

func TestNewSnapshotPruner_Schedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"@hourly", false},
		{"*/5 * * * *", false},
		{"0 3 * * 1", false},
		{"every hour", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			_, err := NewSnapshotPruner(&pruneStore{}, 3, tt.schedule, slog.Default())
			require.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestSnapshotPruner_PruneOnce(t *testing.T) {
	req := require.New(t)
	store := &pruneStore{}
	pruner, err := NewSnapshotPruner(store, 3, "@daily", slog.Default())
	req.NoError(err)

	pruner.PruneOnce(context.Background())
	store.err = fmt.Errorf("badger closed")
	pruner.PruneOnce(context.Background())

	req.Equal([]int{3, 3}, store.calls)
}

func TestSnapshotPruner_RunStopsWithContext(t *testing.T) {
	req := require.New(t)
	pruner, err := NewSnapshotPruner(&pruneStore{}, 3, "@daily", slog.Default())
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(pruner.Run(ctx), context.Canceled)
}
