package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrTrainingData         = fmt.Errorf("insufficient training data")
	ErrTrainingTimeout      = fmt.Errorf("training exceeded its deadline")
	ErrSnapshotNotFound     = fmt.Errorf("no snapshot has been persisted")
	ErrSnapshotCorrupt      = fmt.Errorf("snapshot payload is corrupt")
	ErrStaleSnapshot        = fmt.Errorf("snapshot version is not newer than the active one")
	ErrComplaintNotFound    = fmt.Errorf("complaint not found")
	ErrFeedbackAlreadyGiven = fmt.Errorf("feedback already given for this complaint")
	ErrUnknownCategory      = fmt.Errorf("unknown category")
	ErrEmptyText            = fmt.Errorf("complaint text is required")
	ErrInvalidRequest       = fmt.Errorf("invalid request")
)
