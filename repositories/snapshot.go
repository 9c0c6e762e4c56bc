package repositories

import (
	"complaint-triage/ai"
	"complaint-triage/errors"
	"context"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	snapshotPrefix    = "snapshot:v:"
	snapshotActiveKey = "snapshot:active"
)

// SnapshotRepository keeps every model generation under
// "snapshot:v:{version_padded}" and the active version under
// "snapshot:active". Both keys are written in one transaction, so a
// snapshot only becomes visible once it is fully persisted.
type SnapshotRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSnapshotRepository(db *badger.DB, log *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, log: log}
}

// SnapshotInfo describes a persisted generation without decoding it.
type SnapshotInfo struct {
	Version     uint64
	TrainedAt   time.Time
	SampleCount int
	Size        int
	Active      bool
}

func versionKey(version uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", snapshotPrefix, version))
}

func (s *SnapshotRepository) Save(ctx context.Context, snapshot *ai.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot == nil || snapshot.Vectorizer == nil || snapshot.Classifier == nil {
		return fmt.Errorf("%w: incomplete snapshot", errors.ErrSnapshotCorrupt)
	}
	payload := marshalSnapshot(snapshot)
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(versionKey(snapshot.Version), payload); err != nil {
			return err
		}
		return txn.Set([]byte(snapshotActiveKey), binary.BigEndian.AppendUint64(nil, snapshot.Version))
	})
	if err != nil {
		return fmt.Errorf("persist snapshot v%d: %w", snapshot.Version, err)
	}
	s.log.Debug("Snapshot persisted", "version", snapshot.Version, "bytes", len(payload))
	return nil
}

// LoadActive decodes the snapshot the active pointer refers to.
func (s *SnapshotRepository) LoadActive(ctx context.Context) (*ai.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		version, err := readCounter(txn, snapshotActiveKey)
		if err != nil {
			return err
		}
		if version == 0 {
			return errors.ErrSnapshotNotFound
		}
		item, err := txn.Get(versionKey(version))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: active version %d has no payload", errors.ErrSnapshotCorrupt, version)
		}
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSnapshot(payload)
}

// LatestVersion returns the highest persisted version, 0 when none exists.
func (s *SnapshotRepository) LatestVersion(ctx context.Context) (uint64, error) {
	infos, err := s.versions(ctx)
	if err != nil || len(infos) == 0 {
		return 0, err
	}
	return infos[len(infos)-1], nil
}

// List describes every persisted generation, oldest first.
func (s *SnapshotRepository) List(ctx context.Context) ([]SnapshotInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var infos []SnapshotInfo
	err := s.db.View(func(txn *badger.Txn) error {
		active, err := readCounter(txn, snapshotActiveKey)
		if err != nil {
			return err
		}
		prefix := []byte(snapshotPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				info := SnapshotInfo{Size: len(value)}
				snapshot, err := unmarshalSnapshot(value)
				if err != nil {
					s.log.Warn("Unreadable snapshot", "key", string(item.Key()), "error", err)
					info.Version, _ = parseVersionKey(item.Key())
				} else {
					info.Version = snapshot.Version
					info.TrainedAt = snapshot.TrainedAt
					info.SampleCount = snapshot.SampleCount
				}
				info.Active = info.Version == active
				infos = append(infos, info)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return infos, err
}

// Prune deletes all but the newest keep generations. The active one is
// always kept. It returns the number of deleted generations.
func (s *SnapshotRepository) Prune(ctx context.Context, keep int) (int, error) {
	versions, err := s.versions(ctx)
	if err != nil {
		return 0, err
	}
	if keep < 1 {
		keep = 1
	}
	if len(versions) <= keep {
		return 0, nil
	}

	deleted := 0
	err = s.db.Update(func(txn *badger.Txn) error {
		active, err := readCounter(txn, snapshotActiveKey)
		if err != nil {
			return err
		}
		for _, v := range versions[:len(versions)-keep] {
			if v == active {
				continue
			}
			if err := txn.Delete(versionKey(v)); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *SnapshotRepository) versions(ctx context.Context) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var versions []uint64
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(snapshotPrefix)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			v, err := parseVersionKey(it.Item().Key())
			if err != nil {
				return err
			}
			versions = append(versions, v)
		}
		return nil
	})
	return versions, err
}

func parseVersionKey(key []byte) (uint64, error) {
	raw := strings.TrimPrefix(string(key), snapshotPrefix)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q", errors.ErrSnapshotCorrupt, key)
	}
	return v, nil
}
