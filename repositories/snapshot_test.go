package repositories

import (
	"complaint-triage/ai"
	"complaint-triage/errors"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

var fixedCorpus = []string{
	"The package never arrived and tracking shows it's lost",
	"The product quality is terrible, it broke after one use",
	"I was charged three times for the same order",
	"Your website won't let me log in, I keep getting errors",
	"The customer service representative was very rude to me",
	"The item came damaged in a crushed box",
	"This product doesn't match the description at all",
	"My credit card was charged but I didn't receive a confirmation",
	"The app keeps crashing whenever I try to checkout",
	"I'm very satisfied with the quick response from support",
	"",
}

func trainSnapshot(t *testing.T, version uint64) *ai.Snapshot {
	t.Helper()
	snapshot, err := ai.Train(context.Background(), ai.SeedCorpus, version, time.Now(), ai.DefaultTrainOptions)
	require.NoError(t, err)
	return snapshot
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(openDB(t), slog.Default())
	original := trainSnapshot(t, 1)

	// Given a persisted snapshot
	req.NoError(repo.Save(ctx, original))

	// When it is reloaded
	loaded, err := repo.LoadActive(ctx)
	req.NoError(err)

	// Then metadata and parameters are identical
	req.Equal(original.Version, loaded.Version)
	req.Equal(original.SampleCount, loaded.SampleCount)
	req.True(original.TrainedAt.Equal(loaded.TrainedAt))
	req.Equal(original.Vectorizer.Vocabulary(), loaded.Vectorizer.Vocabulary())
	req.Equal(original.Vectorizer.IDF(), loaded.Vectorizer.IDF())
	req.Equal(original.Classifier.Classes(), loaded.Classifier.Classes())
	req.Equal(original.Classifier.Weights(), loaded.Classifier.Weights())

	// And every prediction is reproduced exactly
	for _, text := range fixedCorpus {
		req.Equal(ai.Classify(original, text), ai.Classify(loaded, text), text)
	}
}

func TestSnapshotRepository_NotFound(t *testing.T) {
	req := require.New(t)
	repo := NewSnapshotRepository(openDB(t), slog.Default())

	_, err := repo.LoadActive(context.Background())
	req.ErrorIs(err, errors.ErrSnapshotNotFound)

	latest, err := repo.LatestVersion(context.Background())
	req.NoError(err)
	req.Zero(latest)
}

func TestSnapshotRepository_Corrupt(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openDB(t)
	repo := NewSnapshotRepository(db, slog.Default())
	req.NoError(repo.Save(ctx, trainSnapshot(t, 1)))

	// Given the active payload is overwritten with garbage
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set(versionKey(1), []byte{0xff, 0xff, 0xff})
	}))

	_, err := repo.LoadActive(ctx)
	req.ErrorIs(err, errors.ErrSnapshotCorrupt)
}

func TestSnapshotRepository_ActivePointerFollowsLastSave(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(openDB(t), slog.Default())

	for v := uint64(1); v <= 3; v++ {
		req.NoError(repo.Save(ctx, trainSnapshot(t, v)))
	}

	loaded, err := repo.LoadActive(ctx)
	req.NoError(err)
	req.Equal(uint64(3), loaded.Version)

	latest, err := repo.LatestVersion(ctx)
	req.NoError(err)
	req.Equal(uint64(3), latest)

	infos, err := repo.List(ctx)
	req.NoError(err)
	req.Len(infos, 3)
	req.False(infos[0].Active)
	req.True(infos[2].Active)
	req.Equal(len(ai.SeedCorpus), infos[2].SampleCount)
}

func TestSnapshotRepository_Prune(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(openDB(t), slog.Default())

	for v := uint64(1); v <= 5; v++ {
		req.NoError(repo.Save(ctx, trainSnapshot(t, v)))
	}

	deleted, err := repo.Prune(ctx, 2)
	req.NoError(err)
	req.Equal(3, deleted)

	infos, err := repo.List(ctx)
	req.NoError(err)
	req.Len(infos, 2)
	req.Equal(uint64(4), infos[0].Version)
	req.Equal(uint64(5), infos[1].Version)

	// Then pruning below the retention is a no-op
	deleted, err = repo.Prune(ctx, 2)
	req.NoError(err)
	req.Zero(deleted)

	loaded, err := repo.LoadActive(ctx)
	req.NoError(err)
	req.Equal(uint64(5), loaded.Version)
}
