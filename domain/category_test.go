package domain

import (
	"complaint-triage/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"Lower case", "billing", Billing, false},
		{"Upper case with spaces", "  DELIVERY ", Delivery, false},
		{"Uncategorized is a valid value", "uncategorized", Uncategorized, false},
		{"Unknown label", "shipping", Uncategorized, true},
		{"Empty label", "", Uncategorized, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseCategory(tt.input)
			req.Equal(tt.want, got)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrUnknownCategory)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestCategory_IsTrainable(t *testing.T) {
	req := require.New(t)
	for _, c := range Categories {
		req.True(c.IsTrainable(), c)
	}
	req.False(Uncategorized.IsTrainable())
	req.False(Category("refund").IsTrainable())
}

func TestComplaint_CorrectedSample(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	// Given a complaint without feedback
	c := Complaint{Text: "I was charged twice"}
	_, ok := c.CorrectedSample()
	req.False(ok)

	// Given a feedback confirming the prediction
	c.Feedback = &Feedback{IsCorrect: true, GivenAt: now}
	_, ok = c.CorrectedSample()
	req.False(ok)

	// Given a correction without a usable label
	c.Feedback = &Feedback{IsCorrect: false, Category: Uncategorized, GivenAt: now}
	_, ok = c.CorrectedSample()
	req.False(ok)

	// Then a correction with a label becomes a training sample
	c.Feedback = &Feedback{IsCorrect: false, Category: Billing, GivenAt: now}
	sample, ok := c.CorrectedSample()
	req.True(ok)
	req.Equal(TrainingSample{Text: "I was charged twice", Label: Billing}, sample)
}

func TestSummary_Add(t *testing.T) {
	req := require.New(t)
	summary := NewSummary()

	summary.Add(Complaint{Category: Billing, Status: Pending, Priority: High})
	summary.Add(Complaint{Category: Billing, Status: Resolved, Priority: Low,
		Feedback: &Feedback{IsCorrect: true}})
	summary.Add(Complaint{Category: Delivery, Status: Pending, Priority: High,
		Feedback: &Feedback{IsCorrect: false, Category: Quality}})

	req.Equal(3, summary.Total)
	req.Equal(2, summary.ByCategory[Billing])
	req.Equal(2, summary.ByStatus[Pending])
	req.Equal(2, summary.ByPriority[High])
	req.Equal(2, summary.Feedback)
	req.Equal(1, summary.Corrections)
}
