package domain

import (
	"time"

	"github.com/google/uuid"
)

// Complaint is the record produced by a triage.
// MLCategory and Confidence are the raw prediction of the model active at
// submission time; they survive manual overrides and later retrains.
type Complaint struct {
	ID               uuid.UUID
	Text             string
	Category         Category
	MLCategory       Category
	Confidence       float64
	IsManualCategory bool
	Sentiment        Sentiment
	SentimentScore   float64
	SentimentEmoji   string
	Lang             string
	Priority         Priority
	SLAHours         int
	SLADeadline      time.Time
	CreatedAt        time.Time
	Status           Status
	SubmittedBy      string
	Feedback         *Feedback
}

// Feedback is a human verdict on the ML category.
// Category is only set when IsCorrect is false.
type Feedback struct {
	IsCorrect bool
	Category  Category
	GivenAt   time.Time
}

func (c Complaint) FeedbackGiven() bool {
	return c.Feedback != nil
}

// CorrectedSample returns the training sample carried by an incorrect feedback.
func (c Complaint) CorrectedSample() (TrainingSample, bool) {
	if c.Feedback == nil || c.Feedback.IsCorrect || !c.Feedback.Category.IsTrainable() {
		return TrainingSample{}, false
	}
	return TrainingSample{Text: c.Text, Label: c.Feedback.Category}, true
}

// Summary aggregates complaint counts for dashboards.
type Summary struct {
	Total       int
	ByCategory  map[Category]int
	ByStatus    map[Status]int
	ByPriority  map[Priority]int
	Feedback    int
	Corrections int
}

func NewSummary() Summary {
	return Summary{
		ByCategory: make(map[Category]int),
		ByStatus:   make(map[Status]int),
		ByPriority: make(map[Priority]int),
	}
}

func (s *Summary) Add(c Complaint) {
	s.Total++
	s.ByCategory[c.Category]++
	s.ByStatus[c.Status]++
	s.ByPriority[c.Priority]++
	if c.FeedbackGiven() {
		s.Feedback++
		if _, ok := c.CorrectedSample(); ok {
			s.Corrections++
		}
	}
}
