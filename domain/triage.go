package domain

type Sentiment string

const (
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
	Positive Sentiment = "positive"
)

func (s Sentiment) IsValid() bool {
	return s == Negative || s == Neutral || s == Positive
}

type Priority string

const (
	Critical Priority = "critical"
	High     Priority = "high"
	Medium   Priority = "medium"
	Low      Priority = "low"
)

type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Resolved   Status = "resolved"
)

func (s Status) IsValid() bool {
	return s == Pending || s == InProgress || s == Resolved
}

// TrainingSample is a supervised (text, label) pair.
type TrainingSample struct {
	Text  string
	Label Category
}
