package repositories

import (
	"complaint-triage/domain"
	"fmt"

	"github.com/google/uuid"
)

const (
	complaintID = iota + 1
	complaintText
	complaintCategory
	complaintMLCategory
	complaintConfidence
	complaintIsManual
	complaintSentiment
	complaintSentimentScore
	complaintSentimentEmoji
	complaintPriority
	complaintSLAHours
	complaintSLADeadline
	complaintCreatedAt
	complaintStatus
	complaintSubmittedBy
	complaintFeedbackGiven
	complaintFeedbackCorrect
	complaintFeedbackCategory
	complaintFeedbackAt
	complaintLang
)

func marshalComplaint(c domain.Complaint) []byte {
	var b []byte
	b = appendString(b, complaintID, c.ID.String())
	b = appendString(b, complaintText, c.Text)
	b = appendString(b, complaintCategory, string(c.Category))
	b = appendString(b, complaintMLCategory, string(c.MLCategory))
	b = appendDouble(b, complaintConfidence, c.Confidence)
	b = appendBool(b, complaintIsManual, c.IsManualCategory)
	b = appendString(b, complaintSentiment, string(c.Sentiment))
	b = appendDouble(b, complaintSentimentScore, c.SentimentScore)
	b = appendString(b, complaintSentimentEmoji, c.SentimentEmoji)
	b = appendString(b, complaintPriority, string(c.Priority))
	b = appendUvarint(b, complaintSLAHours, uint64(c.SLAHours))
	b = appendTime(b, complaintSLADeadline, c.SLADeadline)
	b = appendTime(b, complaintCreatedAt, c.CreatedAt)
	b = appendString(b, complaintStatus, string(c.Status))
	b = appendString(b, complaintSubmittedBy, c.SubmittedBy)
	b = appendString(b, complaintLang, c.Lang)
	if c.Feedback != nil {
		b = appendBool(b, complaintFeedbackGiven, true)
		b = appendBool(b, complaintFeedbackCorrect, c.Feedback.IsCorrect)
		b = appendString(b, complaintFeedbackCategory, string(c.Feedback.Category))
		b = appendTime(b, complaintFeedbackAt, c.Feedback.GivenAt)
	}
	return b
}

func unmarshalComplaint(b []byte) (domain.Complaint, error) {
	var c domain.Complaint
	var feedback domain.Feedback
	var feedbackGiven bool
	var rawID string

	err := consumeFields(b, func(f field) error {
		switch f.num {
		case complaintID:
			rawID = f.str()
		case complaintText:
			c.Text = f.str()
		case complaintCategory:
			c.Category = domain.Category(f.str())
		case complaintMLCategory:
			c.MLCategory = domain.Category(f.str())
		case complaintConfidence:
			c.Confidence = f.double()
		case complaintIsManual:
			c.IsManualCategory = f.boolean()
		case complaintSentiment:
			c.Sentiment = domain.Sentiment(f.str())
		case complaintSentimentScore:
			c.SentimentScore = f.double()
		case complaintSentimentEmoji:
			c.SentimentEmoji = f.str()
		case complaintPriority:
			c.Priority = domain.Priority(f.str())
		case complaintSLAHours:
			c.SLAHours = int(f.u64)
		case complaintSLADeadline:
			c.SLADeadline = f.time()
		case complaintCreatedAt:
			c.CreatedAt = f.time()
		case complaintStatus:
			c.Status = domain.Status(f.str())
		case complaintSubmittedBy:
			c.SubmittedBy = f.str()
		case complaintLang:
			c.Lang = f.str()
		case complaintFeedbackGiven:
			feedbackGiven = f.boolean()
		case complaintFeedbackCorrect:
			feedback.IsCorrect = f.boolean()
		case complaintFeedbackCategory:
			feedback.Category = domain.Category(f.str())
		case complaintFeedbackAt:
			feedback.GivenAt = f.time()
		}
		return nil
	})
	if err != nil {
		return domain.Complaint{}, fmt.Errorf("decode complaint: %w", err)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.Complaint{}, fmt.Errorf("decode complaint id %q: %w", rawID, err)
	}
	c.ID = id
	if feedbackGiven {
		c.Feedback = &feedback
	}
	return c, nil
}
