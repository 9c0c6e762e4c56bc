package services

import (
	"complaint-triage/ai"
	"complaint-triage/domain"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// NewComplaint is a submission. Category, when set, overrides the model.
type NewComplaint struct {
	Text        string `validate:"required,max=10000"`
	Category    string `validate:"omitempty,oneof=billing delivery quality service technical"`
	SubmittedBy string `validate:"max=128"`
}

// FeedbackRequest is a verdict on the category predicted for a complaint.
// Category is required when IsCorrect is false.
type FeedbackRequest struct {
	ComplaintID uuid.UUID
	IsCorrect   bool
	Category    string `validate:"omitempty,oneof=billing delivery quality service technical"`
}

type FeedbackResult struct {
	FeedbackCountAfter int
	RetrainQueued      bool
}

type ModelInfo struct {
	Version     uint64
	TrainedAt   time.Time
	SampleCount int
	Vocabulary  int
	Degraded    bool
}

func modelInfo(snapshot *ai.Snapshot) ModelInfo {
	if snapshot == nil {
		return ModelInfo{Degraded: true}
	}
	return ModelInfo{
		Version:     snapshot.Version,
		TrainedAt:   snapshot.TrainedAt,
		SampleCount: snapshot.SampleCount,
		Vocabulary:  snapshot.Vectorizer.Dimension(),
	}
}

// Page is one page of complaints, newest first.
type Page struct {
	Complaints []domain.Complaint
	Page       int
	PerPage    int
	Total      int
}

func (p Page) Pages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}
