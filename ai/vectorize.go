package ai

import (
	"complaint-triage/errors"
	"fmt"
	"math"
	"sort"
)

// Vectorizer projects text onto a vocabulary fixed at fit time.
// It is immutable: Transform never grows the vocabulary.
type Vectorizer struct {
	vocabulary []string
	index      map[string]int
	idf        []float64
}

// FitVectorizer builds the vocabulary of the corpus and its smoothed
// inverse document frequencies: idf = ln((1+n)/(1+df)) + 1.
func FitVectorizer(corpus []string) (*Vectorizer, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", errors.ErrTrainingData)
	}

	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range Tokenize(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, fmt.Errorf("%w: corpus has no extractable terms", errors.ErrTrainingData)
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	n := float64(len(corpus))
	idf := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return RestoreVectorizer(vocabulary, idf)
}

// RestoreVectorizer rebuilds a vectorizer from a persisted vocabulary.
func RestoreVectorizer(vocabulary []string, idf []float64) (*Vectorizer, error) {
	if len(vocabulary) == 0 || len(vocabulary) != len(idf) {
		return nil, fmt.Errorf("%w: vocabulary of %d terms with %d weights",
			errors.ErrTrainingData, len(vocabulary), len(idf))
	}
	index := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		index[term] = i
	}
	return &Vectorizer{
		vocabulary: append([]string(nil), vocabulary...),
		index:      index,
		idf:        append([]float64(nil), idf...),
	}, nil
}

// feature is one non-zero coordinate of a TF-IDF vector.
type feature struct {
	index int
	value float64
}

// Transform returns the L2-normalised TF-IDF vector of text.
// Terms outside the vocabulary are ignored; empty text gives the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, f := range v.features(text) {
		vec[f.index] = f.value
	}
	return vec
}

// features is the sparse form of Transform, ordered by vocabulary index.
// It is nil when no term of text is in the vocabulary.
func (v *Vectorizer) features(text string) []feature {
	counts := make(map[int]float64)
	for _, term := range Tokenize(text) {
		if i, ok := v.index[term]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	out := make([]feature, 0, len(counts))
	var norm float64
	for i, tf := range counts {
		w := tf * v.idf[i]
		out = append(out, feature{index: i, value: w})
		norm += w * w
	}
	sort.Slice(out, func(a, b int) bool { return out[a].index < out[b].index })
	norm = math.Sqrt(norm)
	for i := range out {
		out[i].value /= norm
	}
	return out
}

// sparse keeps the non-zero coordinates of a dense vector.
func sparse(vec []float64) []feature {
	var out []feature
	for i, x := range vec {
		if x != 0 {
			out = append(out, feature{index: i, value: x})
		}
	}
	return out
}

func (v *Vectorizer) Dimension() int {
	return len(v.vocabulary)
}

// Vocabulary returns a copy of the terms in index order.
func (v *Vectorizer) Vocabulary() []string {
	return append([]string(nil), v.vocabulary...)
}

// IDF returns a copy of the per-term weights in index order.
func (v *Vectorizer) IDF() []float64 {
	return append([]float64(nil), v.idf...)
}
