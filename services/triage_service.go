package services

import (
	"complaint-triage/ai"
	"complaint-triage/contract"
	"complaint-triage/domain"
	"complaint-triage/errors"
	"complaint-triage/priority"
	"complaint-triage/sentiment"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ITriageService interface {
	Classify(text string) ai.Prediction
	AnalyzeSentiment(text string) sentiment.Result
	ComputePriority(text string, label domain.Sentiment) priority.Decision
	PriorityRules() []priority.Rule
	SubmitComplaint(ctx context.Context, request NewComplaint) (domain.Complaint, error)
	RecordFeedback(ctx context.Context, request FeedbackRequest) (FeedbackResult, error)
	GetModelInfo() ModelInfo
	GetComplaint(ctx context.Context, id uuid.UUID) (domain.Complaint, error)
	ListComplaints(ctx context.Context, page, perPage int) (Page, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Complaint, error)
	Summary(ctx context.Context) (domain.Summary, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Complaint, error)
}

type TriageService struct {
	log        *slog.Logger
	models     contract.ModelProvider
	sentiment  *sentiment.Analyzer
	priority   *priority.Engine
	repository contract.IComplaintRepository
	index      contract.ComplaintIndex
	notifier   contract.RetrainNotifier
	pageSize   int
	now        func() time.Time
}

func NewTriageService(
	log *slog.Logger,
	models contract.ModelProvider,
	analyzer *sentiment.Analyzer,
	engine *priority.Engine,
	repository contract.IComplaintRepository,
	index contract.ComplaintIndex,
	notifier contract.RetrainNotifier,
	pageSize int,
) *TriageService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TriageService{
		log:        log,
		models:     models,
		sentiment:  analyzer,
		priority:   engine,
		repository: repository,
		index:      index,
		notifier:   notifier,
		pageSize:   pageSize,
		now:        time.Now,
	}
}

// Classify reads the active snapshot once for the whole prediction.
func (s *TriageService) Classify(text string) ai.Prediction {
	return ai.Classify(s.models.Current(), text)
}

func (s *TriageService) AnalyzeSentiment(text string) sentiment.Result {
	return s.sentiment.Analyze(text)
}

func (s *TriageService) ComputePriority(text string, label domain.Sentiment) priority.Decision {
	return s.priority.Evaluate(text, label)
}

// PriorityRules lists the priority table in evaluation order.
func (s *TriageService) PriorityRules() []priority.Rule {
	return s.priority.Rules()
}

func (s *TriageService) SubmitComplaint(ctx context.Context, request NewComplaint) (domain.Complaint, error) {
	request.Text = strings.TrimSpace(request.Text)
	if request.Text == "" {
		return domain.Complaint{}, errors.ErrEmptyText
	}
	if err := validate.Struct(request); err != nil {
		return domain.Complaint{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	prediction := s.Classify(request.Text)
	mood := s.AnalyzeSentiment(request.Text)
	decision := s.ComputePriority(request.Text, mood.Label)
	createdAt := s.now().UTC()

	complaint := domain.Complaint{
		ID:             uuid.New(),
		Text:           request.Text,
		Category:       prediction.Category,
		MLCategory:     prediction.Category,
		Confidence:     prediction.Confidence,
		Sentiment:      mood.Label,
		SentimentScore: mood.Score,
		SentimentEmoji: mood.Emoji,
		Lang:           mood.Lang,
		Priority:       decision.Priority,
		SLAHours:       decision.SLAHours,
		SLADeadline:    priority.Deadline(createdAt, decision.SLAHours),
		CreatedAt:      createdAt,
		Status:         domain.Pending,
		SubmittedBy:    request.SubmittedBy,
	}
	if request.Category != "" {
		category, err := domain.ParseCategory(request.Category)
		if err != nil {
			return domain.Complaint{}, err
		}
		complaint.Category = category
		complaint.IsManualCategory = true
	}

	if err := s.repository.Store(ctx, complaint); err != nil {
		return domain.Complaint{}, fmt.Errorf("store complaint: %w", err)
	}
	if s.index != nil {
		if err := s.index.Index(complaint); err != nil {
			s.log.Warn("Complaint stored but not indexed", "id", complaint.ID, "error", err)
		}
	}
	s.log.Debug("Complaint triaged",
		"id", complaint.ID,
		"category", complaint.Category,
		"confidence", complaint.Confidence,
		"sentiment", complaint.Sentiment,
		"priority", complaint.Priority,
		"rule", decision.Rule)
	return complaint, nil
}

// RecordFeedback stores the verdict, then lets the coordinator decide on a
// retrain. Retraining outcomes never reach the caller.
func (s *TriageService) RecordFeedback(ctx context.Context, request FeedbackRequest) (FeedbackResult, error) {
	if request.ComplaintID == uuid.Nil {
		return FeedbackResult{}, fmt.Errorf("%w: complaint id is required", errors.ErrInvalidRequest)
	}
	if err := validate.Struct(request); err != nil {
		return FeedbackResult{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	feedback := domain.Feedback{IsCorrect: request.IsCorrect, GivenAt: s.now().UTC()}
	if !request.IsCorrect {
		if request.Category == "" {
			return FeedbackResult{}, fmt.Errorf("%w: a corrected category is required", errors.ErrInvalidRequest)
		}
		category, err := domain.ParseCategory(request.Category)
		if err != nil {
			return FeedbackResult{}, err
		}
		feedback.Category = category
	}

	count, err := s.repository.SaveFeedback(ctx, request.ComplaintID, feedback)
	if err != nil {
		return FeedbackResult{}, err
	}
	queued := false
	if s.notifier != nil {
		queued = s.notifier.Notify(count)
	}
	s.log.Info("Feedback recorded",
		"id", request.ComplaintID, "is_correct", request.IsCorrect, "feedback_count", count, "retrain_queued", queued)
	return FeedbackResult{FeedbackCountAfter: count, RetrainQueued: queued}, nil
}

func (s *TriageService) GetModelInfo() ModelInfo {
	return modelInfo(s.models.Current())
}

func (s *TriageService) GetComplaint(ctx context.Context, id uuid.UUID) (domain.Complaint, error) {
	return s.repository.Get(ctx, id)
}

// ListComplaints pages are 1-based. A perPage of zero uses the default size.
func (s *TriageService) ListComplaints(ctx context.Context, page, perPage int) (Page, error) {
	page = max(page, 1)
	if perPage <= 0 {
		perPage = s.pageSize
	}
	complaints, total, err := s.repository.List(ctx, (page-1)*perPage, perPage)
	if err != nil {
		return Page{}, err
	}
	return Page{Complaints: complaints, Page: page, PerPage: perPage, Total: total}, nil
}

func (s *TriageService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Complaint, error) {
	if !status.IsValid() {
		return domain.Complaint{}, fmt.Errorf("%w: unknown status %q", errors.ErrInvalidRequest, status)
	}
	return s.repository.UpdateStatus(ctx, id, status)
}

func (s *TriageService) Summary(ctx context.Context) (domain.Summary, error) {
	return s.repository.Summary(ctx)
}

// Search returns indexed complaints matching the query, best match first.
// Hits whose record has since disappeared are skipped.
func (s *TriageService) Search(ctx context.Context, query string, limit int) ([]domain.Complaint, error) {
	if s.index == nil || strings.TrimSpace(query) == "" {
		return nil, nil
	}
	ids, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search complaints: %w", err)
	}
	complaints := lo.FilterMap(ids, func(id uuid.UUID, _ int) (domain.Complaint, bool) {
		complaint, err := s.repository.Get(ctx, id)
		if err != nil {
			s.log.Debug("Search hit skipped", "id", id, "error", err)
			return domain.Complaint{}, false
		}
		return complaint, true
	})
	return complaints, nil
}
