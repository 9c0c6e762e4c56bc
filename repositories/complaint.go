package repositories

import (
	"complaint-triage/domain"
	"complaint-triage/errors"
	"context"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	recordPrefix  = "complaint:rec:"
	seqPrefix     = "complaint:seq:"
	feedbackCount = "feedback:count"
	maxTxnRetries = 5
)

// ComplaintRepository stores complaints in BadgerDB.
// Each complaint has a record key and a chronological index key
// "complaint:seq:{created_at_padded}:{uuid}" used for pagination.
// The feedback counter is updated in the same transaction as the feedback.
type ComplaintRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewComplaintRepository(db *badger.DB, log *slog.Logger) *ComplaintRepository {
	return &ComplaintRepository{db: db, log: log}
}

func recordKey(id uuid.UUID) []byte {
	return []byte(recordPrefix + id.String())
}

func seqKey(c domain.Complaint) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", seqPrefix, c.CreatedAt.UnixNano(), c.ID))
}

func (r *ComplaintRepository) Store(ctx context.Context, complaint domain.Complaint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.update(func(txn *badger.Txn) error {
		if err := txn.Set(recordKey(complaint.ID), marshalComplaint(complaint)); err != nil {
			return err
		}
		return txn.Set(seqKey(complaint), []byte(complaint.ID.String()))
	})
}

func (r *ComplaintRepository) Get(ctx context.Context, id uuid.UUID) (domain.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Complaint{}, err
	}
	var complaint domain.Complaint
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		complaint, err = getComplaint(txn, id)
		return err
	})
	return complaint, err
}

// List returns a page of complaints, newest first, and the total count.
func (r *ComplaintRepository) List(ctx context.Context, offset, limit int) ([]domain.Complaint, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	var complaints []domain.Complaint
	var total int
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(seqPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var ids []uuid.UUID
		// Reverse iteration must start past the last key of the prefix.
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			total++
			if total <= offset || (limit > 0 && len(ids) >= limit) {
				continue
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			id, err := uuid.ParseBytes(value)
			if err != nil {
				return fmt.Errorf("corrupt index entry %q: %w", it.Item().Key(), err)
			}
			ids = append(ids, id)
		}

		for _, id := range ids {
			c, err := getComplaint(txn, id)
			if err != nil {
				return err
			}
			complaints = append(complaints, c)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// SaveFeedback attaches a verdict to a complaint and increments the
// feedback counter atomically. A complaint accepts a single feedback.
func (r *ComplaintRepository) SaveFeedback(ctx context.Context, id uuid.UUID, feedback domain.Feedback) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count uint64
	err := r.update(func(txn *badger.Txn) error {
		complaint, err := getComplaint(txn, id)
		if err != nil {
			return err
		}
		if complaint.Feedback != nil {
			return fmt.Errorf("%w: %s", errors.ErrFeedbackAlreadyGiven, id)
		}
		complaint.Feedback = &feedback
		if err = txn.Set(recordKey(id), marshalComplaint(complaint)); err != nil {
			return err
		}

		count, err = readCounter(txn, feedbackCount)
		if err != nil {
			return err
		}
		count++
		return txn.Set([]byte(feedbackCount), binary.BigEndian.AppendUint64(nil, count))
	})
	if err != nil {
		return 0, err
	}
	r.log.Debug("Feedback stored", "complaint", id, "correct", feedback.IsCorrect, "count", count)
	return int(count), nil
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Complaint{}, err
	}
	var complaint domain.Complaint
	err := r.update(func(txn *badger.Txn) error {
		var err error
		complaint, err = getComplaint(txn, id)
		if err != nil {
			return err
		}
		complaint.Status = status
		return txn.Set(recordKey(id), marshalComplaint(complaint))
	})
	return complaint, err
}

func (r *ComplaintRepository) CountFeedback(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count uint64
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		count, err = readCounter(txn, feedbackCount)
		return err
	})
	return int(count), err
}

// CorrectedSamples returns every incorrect-with-label feedback as a
// training sample, ordered by complaint creation time.
func (r *ComplaintRepository) CorrectedSamples(ctx context.Context) ([]domain.TrainingSample, error) {
	complaints, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var samples []domain.TrainingSample
	for _, c := range complaints {
		if sample, ok := c.CorrectedSample(); ok {
			samples = append(samples, sample)
		}
	}
	return samples, nil
}

func (r *ComplaintRepository) Summary(ctx context.Context) (domain.Summary, error) {
	complaints, err := r.all(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	summary := domain.NewSummary()
	for _, c := range complaints {
		summary.Add(c)
	}
	return summary, nil
}

// all decodes every complaint record, oldest first.
func (r *ComplaintRepository) all(ctx context.Context) ([]domain.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var complaints []domain.Complaint
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(recordPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				c, err := unmarshalComplaint(value)
				if err != nil {
					return err
				}
				complaints = append(complaints, c)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(complaints, func(i, j int) bool {
		if complaints[i].CreatedAt.Equal(complaints[j].CreatedAt) {
			return complaints[i].ID.String() < complaints[j].ID.String()
		}
		return complaints[i].CreatedAt.Before(complaints[j].CreatedAt)
	})
	return complaints, nil
}

// update retries a read-write transaction on conflicts.
func (r *ComplaintRepository) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err = r.db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		r.log.Debug("Transaction conflict, retrying", "attempt", attempt+1)
	}
	return err
}

func getComplaint(txn *badger.Txn, id uuid.UUID) (domain.Complaint, error) {
	item, err := txn.Get(recordKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Complaint{}, fmt.Errorf("%w: %s", errors.ErrComplaintNotFound, id)
	}
	if err != nil {
		return domain.Complaint{}, err
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Complaint{}, err
	}
	return unmarshalComplaint(value)
}

func readCounter(txn *badger.Txn, key string) (uint64, error) {
	item, err := txn.Get([]byte(key))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("counter %s has %d bytes", key, len(value))
	}
	return binary.BigEndian.Uint64(value), nil
}
