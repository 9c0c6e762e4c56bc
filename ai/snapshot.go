package ai

import (
	"complaint-triage/domain"
	"context"
	"time"

	"github.com/samber/lo"
)

// Snapshot is one trained model generation. It is never mutated once built.
type Snapshot struct {
	Vectorizer  *Vectorizer
	Classifier  *Classifier
	Version     uint64
	TrainedAt   time.Time
	SampleCount int
}

// Train fits a vectorizer and a classifier on samples and bundles them
// into a new snapshot carrying the given version.
func Train(ctx context.Context, samples []domain.TrainingSample, version uint64, trainedAt time.Time, opts TrainOptions) (*Snapshot, error) {
	texts := lo.Map(samples, func(s domain.TrainingSample, _ int) string { return s.Text })
	labels := lo.Map(samples, func(s domain.TrainingSample, _ int) domain.Category { return s.Label })

	vectorizer, err := FitVectorizer(texts)
	if err != nil {
		return nil, err
	}
	rows := lo.Map(texts, func(text string, _ int) []feature { return vectorizer.features(text) })

	classifier, err := trainSparse(ctx, rows, vectorizer.Dimension(), labels, opts)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Vectorizer:  vectorizer,
		Classifier:  classifier,
		Version:     version,
		TrainedAt:   trainedAt.UTC(),
		SampleCount: len(samples),
	}, nil
}

// Classify runs text through a single snapshot.
// The caller captures the snapshot once so that the vocabulary and the
// classifier always come from the same generation. Text without any known
// term carries no information and is Degraded too.
func Classify(snapshot *Snapshot, text string) Prediction {
	if snapshot == nil || snapshot.Vectorizer == nil || snapshot.Classifier == nil {
		return Degraded
	}
	if snapshot.Vectorizer.Dimension() != snapshot.Classifier.Dimension() {
		return Degraded
	}
	return snapshot.Classifier.predict(snapshot.Vectorizer.features(text))
}
