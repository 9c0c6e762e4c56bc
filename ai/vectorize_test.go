package ai

import (
	"complaint-triage/errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitVectorizer_Errors(t *testing.T) {
	req := require.New(t)

	// Given an empty corpus
	_, err := FitVectorizer(nil)
	req.ErrorIs(err, errors.ErrTrainingData)

	// Given a corpus made only of stop words and punctuation
	_, err = FitVectorizer([]string{"the and", "...", ""})
	req.ErrorIs(err, errors.ErrTrainingData)
}

func TestVectorizer_Transform(t *testing.T) {
	req := require.New(t)
	v, err := FitVectorizer([]string{
		"the package never arrived",
		"the package was damaged",
		"I was charged twice",
	})
	req.NoError(err)
	req.Equal(v.Dimension(), len(v.Vocabulary()))

	t.Run("Known terms produce a unit vector", func(t *testing.T) {
		vec := v.Transform("package arrived")
		req.Len(vec, v.Dimension())
		var norm float64
		for _, x := range vec {
			norm += x * x
		}
		req.InDelta(1.0, math.Sqrt(norm), 1e-9)
	})

	t.Run("Rare terms weigh more than common ones", func(t *testing.T) {
		vec := v.Transform("package arrived")
		vocab := v.Vocabulary()
		weights := map[string]float64{}
		for i, term := range vocab {
			weights[term] = vec[i]
		}
		req.Greater(weights["arrived"], weights["package"])
	})

	t.Run("Unknown terms never grow the vocabulary", func(t *testing.T) {
		before := v.Dimension()
		vec := v.Transform("completely unseen words")
		req.Equal(before, v.Dimension())
		for _, x := range vec {
			req.Zero(x)
		}
	})

	t.Run("Empty and invalid text give the zero vector", func(t *testing.T) {
		for _, text := range []string{"", "   ", string([]byte{0xff, 0xfe})} {
			vec := v.Transform(text)
			req.Len(vec, v.Dimension())
			for _, x := range vec {
				req.Zero(x)
			}
		}
	})
}

func TestRestoreVectorizer_RejectsMismatch(t *testing.T) {
	req := require.New(t)
	_, err := RestoreVectorizer([]string{"a", "b"}, []float64{1})
	req.ErrorIs(err, errors.ErrTrainingData)
}
