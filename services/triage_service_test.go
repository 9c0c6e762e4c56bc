package services

import (
	"complaint-triage/ai"
	"complaint-triage/domain"
	"complaint-triage/errors"
	"complaint-triage/mocks"
	"complaint-triage/priority"
	"complaint-triage/sentiment"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service    *TriageService
	models     *mocks.MockModelProvider
	repository *mocks.MockIComplaintRepository
	index      *mocks.MockComplaintIndex
	notifier   *mocks.MockRetrainNotifier
	snapshot   *ai.Snapshot
	now        time.Time
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	policy, err := priority.DefaultPolicy()
	require.NoError(t, err)
	engine, err := priority.NewEngine(policy)
	require.NoError(t, err)
	snapshot, err := ai.Train(context.Background(), ai.SeedCorpus, 1, time.Now(), ai.DefaultTrainOptions)
	require.NoError(t, err)

	f := fixture{
		models:     mocks.NewMockModelProvider(ctrl),
		repository: mocks.NewMockIComplaintRepository(ctrl),
		index:      mocks.NewMockComplaintIndex(ctrl),
		notifier:   mocks.NewMockRetrainNotifier(ctrl),
		snapshot:   snapshot,
		now:        time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	f.service = NewTriageService(log, f.models, sentiment.NewAnalyzer(nil), engine, f.repository, f.index, f.notifier, 0)
	f.service.now = func() time.Time { return f.now }
	return f
}

func TestTriageService_SubmitComplaint(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	f.models.EXPECT().Current().Return(f.snapshot)
	f.repository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	f.index.EXPECT().Index(gomock.Any()).Return(nil)

	// When an urgent delivery complaint is submitted
	complaint, err := f.service.SubmitComplaint(ctx, NewComplaint{
		Text:        "  Urgent: the package never arrived and tracking shows it's lost  ",
		SubmittedBy: "alice",
	})

	// Then it is classified, scored and given the critical SLA
	req.NoError(err)
	req.NotEqual(uuid.Nil, complaint.ID)
	req.Equal("Urgent: the package never arrived and tracking shows it's lost", complaint.Text)
	req.Equal(domain.Delivery, complaint.Category)
	req.Equal(complaint.Category, complaint.MLCategory)
	req.False(complaint.IsManualCategory)
	req.Greater(complaint.Confidence, 0.0)
	req.LessOrEqual(complaint.Confidence, 1.0)
	req.Equal(domain.Critical, complaint.Priority)
	req.Equal(4, complaint.SLAHours)
	req.Equal(f.now, complaint.CreatedAt)
	req.Equal(f.now.Add(4*time.Hour), complaint.SLADeadline)
	req.Equal(domain.Pending, complaint.Status)
	req.Equal("alice", complaint.SubmittedBy)
	req.NotEmpty(complaint.SentimentEmoji)
}

func TestTriageService_SubmitComplaint_ManualCategory(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.models.EXPECT().Current().Return(f.snapshot)
	f.repository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	f.index.EXPECT().Index(gomock.Any()).Return(fmt.Errorf("index closed"))

	complaint, err := f.service.SubmitComplaint(context.Background(), NewComplaint{
		Text:     "The package never arrived",
		Category: "billing",
	})

	// Then the manual category wins and the prediction is kept aside
	req.NoError(err)
	req.Equal(domain.Billing, complaint.Category)
	req.Equal(domain.Delivery, complaint.MLCategory)
	req.True(complaint.IsManualCategory)
}

func TestTriageService_SubmitComplaint_Degraded(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given no model has been published yet
	f.models.EXPECT().Current().Return(nil)
	f.repository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	f.index.EXPECT().Index(gomock.Any()).Return(nil)

	complaint, err := f.service.SubmitComplaint(context.Background(), NewComplaint{Text: "I love the quick support"})
	req.NoError(err)
	req.Equal(domain.Uncategorized, complaint.Category)
	req.Zero(complaint.Confidence)
	req.Equal(domain.Positive, complaint.Sentiment)
	req.Equal(domain.Low, complaint.Priority)
	req.Equal(168, complaint.SLAHours)
}

func TestTriageService_SubmitComplaint_Invalid(t *testing.T) {
	tests := []struct {
		description string
		request     NewComplaint
		wantErr     error
	}{
		{"Should fail on empty text", NewComplaint{Text: ""}, errors.ErrEmptyText},
		{"Should fail on blank text", NewComplaint{Text: " \n\t "}, errors.ErrEmptyText},
		{"Should fail on unknown category", NewComplaint{Text: "late parcel", Category: "weather"}, errors.ErrInvalidRequest},
		{"Should fail on oversized text", NewComplaint{Text: strings.Repeat("a", 10001)}, errors.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.service.SubmitComplaint(context.Background(), tt.request)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTriageService_SubmitComplaint_StoreFailure(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.models.EXPECT().Current().Return(f.snapshot)
	f.repository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(fmt.Errorf("badger closed"))

	_, err := f.service.SubmitComplaint(context.Background(), NewComplaint{Text: "I was charged twice"})
	req.Error(err)
}

func TestTriageService_RecordFeedback(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	id := uuid.New()

	// Given the 50th feedback is a correction
	f.repository.EXPECT().
		SaveFeedback(gomock.Any(), id, domain.Feedback{IsCorrect: false, Category: domain.Billing, GivenAt: f.now}).
		Return(50, nil)
	f.notifier.EXPECT().Notify(50).Return(true)

	result, err := f.service.RecordFeedback(ctx, FeedbackRequest{ComplaintID: id, Category: "billing"})

	// Then the count is returned and a retrain was queued
	req.NoError(err)
	req.Equal(50, result.FeedbackCountAfter)
	req.True(result.RetrainQueued)
}

func TestTriageService_RecordFeedback_CorrectIgnoresCategory(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	id := uuid.New()

	f.repository.EXPECT().
		SaveFeedback(gomock.Any(), id, domain.Feedback{IsCorrect: true, GivenAt: f.now}).
		Return(55, nil)
	f.notifier.EXPECT().Notify(55).Return(false)

	result, err := f.service.RecordFeedback(context.Background(), FeedbackRequest{ComplaintID: id, IsCorrect: true, Category: "delivery"})
	req.NoError(err)
	req.Equal(55, result.FeedbackCountAfter)
	req.False(result.RetrainQueued)
}

func TestTriageService_RecordFeedback_Invalid(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		description string
		request     FeedbackRequest
	}{
		{"Should fail without complaint id", FeedbackRequest{IsCorrect: true}},
		{"Should fail on incorrect verdict without category", FeedbackRequest{ComplaintID: id}},
		{"Should fail on unknown category", FeedbackRequest{ComplaintID: id, Category: "weather"}},
		{"Should fail on uncategorized as correction", FeedbackRequest{ComplaintID: id, Category: "uncategorized"}},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.service.RecordFeedback(context.Background(), tt.request)
			require.ErrorIs(t, err, errors.ErrInvalidRequest)
		})
	}
}

func TestTriageService_RecordFeedback_AlreadyGiven(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	id := uuid.New()

	f.repository.EXPECT().SaveFeedback(gomock.Any(), id, gomock.Any()).Return(0, errors.ErrFeedbackAlreadyGiven)

	_, err := f.service.RecordFeedback(context.Background(), FeedbackRequest{ComplaintID: id, IsCorrect: true})
	req.ErrorIs(err, errors.ErrFeedbackAlreadyGiven)
}

func TestTriageService_GetModelInfo(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.models.EXPECT().Current().Return(nil)
	req.Equal(ModelInfo{Degraded: true}, f.service.GetModelInfo())

	f.models.EXPECT().Current().Return(f.snapshot)
	info := f.service.GetModelInfo()
	req.False(info.Degraded)
	req.Equal(uint64(1), info.Version)
	req.Equal(len(ai.SeedCorpus), info.SampleCount)
	req.Equal(f.snapshot.Vectorizer.Dimension(), info.Vocabulary)
}

func TestTriageService_ListComplaints(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	f.repository.EXPECT().List(gomock.Any(), 40, 20).Return([]domain.Complaint{{ID: uuid.New()}}, 41, nil)
	page, err := f.service.ListComplaints(ctx, 3, 0)
	req.NoError(err)
	req.Equal(3, page.Page)
	req.Equal(20, page.PerPage)
	req.Equal(3, page.Pages())
	req.Len(page.Complaints, 1)

	f.repository.EXPECT().List(gomock.Any(), 0, 5).Return(nil, 0, nil)
	page, err = f.service.ListComplaints(ctx, -1, 5)
	req.NoError(err)
	req.Equal(1, page.Page)
	req.Zero(page.Pages())
}

func TestTriageService_UpdateStatus(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	id := uuid.New()

	f.repository.EXPECT().UpdateStatus(gomock.Any(), id, domain.Resolved).Return(domain.Complaint{ID: id, Status: domain.Resolved}, nil)
	complaint, err := f.service.UpdateStatus(ctx, id, domain.Resolved)
	req.NoError(err)
	req.Equal(domain.Resolved, complaint.Status)

	_, err = f.service.UpdateStatus(ctx, id, domain.Status("archived"))
	req.ErrorIs(err, errors.ErrInvalidRequest)
}

func TestTriageService_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	found, gone := uuid.New(), uuid.New()

	f.index.EXPECT().Search(gomock.Any(), "parcel", 10).Return([]uuid.UUID{found, gone}, nil)
	f.repository.EXPECT().Get(gomock.Any(), found).Return(domain.Complaint{ID: found}, nil)
	f.repository.EXPECT().Get(gomock.Any(), gone).Return(domain.Complaint{}, errors.ErrComplaintNotFound)

	complaints, err := f.service.Search(ctx, "parcel", 10)
	req.NoError(err)
	req.Len(complaints, 1)
	req.Equal(found, complaints[0].ID)

	complaints, err = f.service.Search(ctx, "   ", 10)
	req.NoError(err)
	req.Empty(complaints)
}

func TestTriageService_PriorityRules(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	rules := f.service.PriorityRules()
	req.Len(rules, 4)
	req.Equal(domain.Critical, rules[0].Priority)
	req.Equal(4, rules[0].SLAHours)
}
