package repositories

import (
	"complaint-triage/ai"
	"complaint-triage/domain"
	"complaint-triage/errors"
	"fmt"

	"github.com/samber/lo"
)

const snapshotFormatVersion = 1

const (
	snapshotFormat = iota + 1
	snapshotVersion
	snapshotTrainedAt
	snapshotSampleCount
	snapshotVocabulary
	snapshotIDF
	snapshotClasses
	snapshotWeights
	snapshotBias
)

// marshalSnapshot writes the vocabulary, the idf weights, the classes and
// the row-major weight matrix of a snapshot, tagged with its format version.
func marshalSnapshot(s *ai.Snapshot) []byte {
	var b []byte
	b = appendUvarint(b, snapshotFormat, snapshotFormatVersion)
	b = appendUvarint(b, snapshotVersion, s.Version)
	b = appendTime(b, snapshotTrainedAt, s.TrainedAt)
	b = appendUvarint(b, snapshotSampleCount, uint64(s.SampleCount))
	for _, term := range s.Vectorizer.Vocabulary() {
		b = appendString(b, snapshotVocabulary, term)
	}
	b = appendPackedDoubles(b, snapshotIDF, s.Vectorizer.IDF())
	for _, class := range s.Classifier.Classes() {
		b = appendString(b, snapshotClasses, string(class))
	}
	b = appendPackedDoubles(b, snapshotWeights, lo.Flatten(s.Classifier.Weights()))
	b = appendPackedDoubles(b, snapshotBias, s.Classifier.Bias())
	return b
}

func unmarshalSnapshot(b []byte) (*ai.Snapshot, error) {
	snapshot := &ai.Snapshot{}
	var format uint64
	var vocabulary []string
	var classes []domain.Category
	var idf, weights, bias []float64

	err := consumeFields(b, func(f field) error {
		var err error
		switch f.num {
		case snapshotFormat:
			format = f.u64
		case snapshotVersion:
			snapshot.Version = f.u64
		case snapshotTrainedAt:
			snapshot.TrainedAt = f.time()
		case snapshotSampleCount:
			snapshot.SampleCount = int(f.u64)
		case snapshotVocabulary:
			vocabulary = append(vocabulary, f.str())
		case snapshotIDF:
			idf, err = consumePackedDoubles(f.bytes)
		case snapshotClasses:
			classes = append(classes, domain.Category(f.str()))
		case snapshotWeights:
			weights, err = consumePackedDoubles(f.bytes)
		case snapshotBias:
			bias, err = consumePackedDoubles(f.bytes)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSnapshotCorrupt, err)
	}
	if format != snapshotFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format %d", errors.ErrSnapshotCorrupt, format)
	}

	vectorizer, err := ai.RestoreVectorizer(vocabulary, idf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSnapshotCorrupt, err)
	}
	dim := vectorizer.Dimension()
	if len(weights) != dim*len(classes) {
		return nil, fmt.Errorf("%w: %d weights for %d classes of dimension %d",
			errors.ErrSnapshotCorrupt, len(weights), len(classes), dim)
	}
	classifier, err := ai.RestoreClassifier(classes, lo.Chunk(weights, dim), bias)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSnapshotCorrupt, err)
	}
	for _, c := range classes {
		if !c.IsTrainable() {
			return nil, fmt.Errorf("%w: unknown class %q", errors.ErrSnapshotCorrupt, c)
		}
	}

	snapshot.Vectorizer = vectorizer
	snapshot.Classifier = classifier
	return snapshot, nil
}
