//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"complaint-triage/ai"
	"complaint-triage/domain"
	"context"
	"reflect"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// FeedbackStore is the read side the retraining cycle needs.
type FeedbackStore interface {
	CountFeedback(ctx context.Context) (int, error)
	CorrectedSamples(ctx context.Context) ([]domain.TrainingSample, error)
}

// IComplaintRepository persists complaints and their feedback.
type IComplaintRepository interface {
	FeedbackStore
	Store(ctx context.Context, complaint domain.Complaint) error
	Get(ctx context.Context, id uuid.UUID) (domain.Complaint, error)
	List(ctx context.Context, offset, limit int) ([]domain.Complaint, int, error)
	// SaveFeedback stores the verdict and returns the feedback count after it.
	SaveFeedback(ctx context.Context, id uuid.UUID, feedback domain.Feedback) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Complaint, error)
	Summary(ctx context.Context) (domain.Summary, error)
}

// SnapshotStore persists model generations. Save must be atomic: a
// snapshot is either fully written and active, or not visible at all.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *ai.Snapshot) error
	LoadActive(ctx context.Context) (*ai.Snapshot, error)
	LatestVersion(ctx context.Context) (uint64, error)
}

type ComplaintIndex interface {
	Index(complaint domain.Complaint) error
	Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error)
}

type ModelProvider interface {
	Current() *ai.Snapshot
}

// RetrainNotifier receives the feedback count after each stored feedback.
type RetrainNotifier interface {
	Notify(feedbackCount int) bool
}
