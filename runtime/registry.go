package runtime

import (
	"complaint-triage/ai"
	"complaint-triage/contract"
	"complaint-triage/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ModelRegistry holds the single active snapshot.
//
// Readers call Current once per request and get a complete generation;
// publishers persist the snapshot first, then swap the pointer. Readers
// never take a lock.
type ModelRegistry struct {
	active  atomic.Pointer[ai.Snapshot]
	floor   atomic.Uint64 // highest version ever persisted
	publish sync.Mutex    // serialises publishers only
	store   contract.SnapshotStore
	log     *slog.Logger
}

func NewModelRegistry(store contract.SnapshotStore, log *slog.Logger) *ModelRegistry {
	return &ModelRegistry{store: store, log: log}
}

// Current returns the active snapshot, nil when none was ever published.
func (r *ModelRegistry) Current() *ai.Snapshot {
	return r.active.Load()
}

// NextVersion is the version the next published snapshot must carry.
func (r *ModelRegistry) NextVersion() uint64 {
	next := r.floor.Load()
	if current := r.Current(); current != nil && current.Version > next {
		next = current.Version
	}
	return next + 1
}

// Publish persists the snapshot, then makes it active.
// On a persistence failure the previous snapshot stays active.
func (r *ModelRegistry) Publish(ctx context.Context, snapshot *ai.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: nil snapshot", errors.ErrSnapshotCorrupt)
	}
	r.publish.Lock()
	defer r.publish.Unlock()

	if snapshot.Version < r.NextVersion() {
		return fmt.Errorf("%w: got v%d, expected at least v%d", errors.ErrStaleSnapshot, snapshot.Version, r.NextVersion())
	}
	if err := r.store.Save(ctx, snapshot); err != nil {
		return err
	}
	r.floor.Store(snapshot.Version)
	r.active.Store(snapshot)
	r.log.Info("Model published",
		"version", snapshot.Version,
		"samples", snapshot.SampleCount,
		"vocabulary", snapshot.Vectorizer.Dimension())
	return nil
}

// Load restores the persisted active snapshot at startup.
// A missing or unreadable snapshot leaves the registry empty, which is
// the degraded serving mode; only storage failures are returned.
func (r *ModelRegistry) Load(ctx context.Context) error {
	latest, err := r.store.LatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("read latest snapshot version: %w", err)
	}
	r.floor.Store(latest)

	snapshot, err := r.store.LoadActive(ctx)
	switch {
	case err == nil:
		r.active.Store(snapshot)
		r.log.Info("Model loaded", "version", snapshot.Version, "trained_at", snapshot.TrainedAt)
		return nil
	case stderrors.Is(err, errors.ErrSnapshotNotFound):
		r.log.Warn("No model persisted yet, serving in degraded mode")
		return nil
	case stderrors.Is(err, errors.ErrSnapshotCorrupt):
		r.log.Error("Persisted model is unreadable, serving in degraded mode", "error", err)
		return nil
	default:
		return fmt.Errorf("load active snapshot: %w", err)
	}
}
