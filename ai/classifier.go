package ai

import (
	"complaint-triage/domain"
	"complaint-triage/errors"
	"context"
	"fmt"
	"math"
	"sort"
)

// TrainOptions tunes the gradient descent of TrainClassifier.
type TrainOptions struct {
	Epochs       int
	LearningRate float64
	L2           float64
}

var DefaultTrainOptions = TrainOptions{
	Epochs:       400,
	LearningRate: 1.0,
	L2:           1e-4,
}

// Classifier is a multinomial logistic regression over a fixed label set.
// Weights are laid out row-major: one row of Dimension() weights per class.
type Classifier struct {
	classes []domain.Category
	weights [][]float64
	bias    []float64
}

type Prediction struct {
	Category   domain.Category
	Confidence float64
}

// Degraded is returned whenever no usable model is available.
var Degraded = Prediction{Category: domain.Uncategorized, Confidence: 0}

// TrainClassifier fits the classifier with full-batch gradient descent.
// Weights start at zero and classes are sorted, so training is deterministic.
// The context is checked between epochs; cancellation aborts training.
func TrainClassifier(ctx context.Context, vectors [][]float64, labels []domain.Category, opts TrainOptions) (*Classifier, error) {
	if len(vectors) == 0 || len(vectors) != len(labels) {
		return nil, fmt.Errorf("%w: %d vectors for %d labels", errors.ErrTrainingData, len(vectors), len(labels))
	}
	dim := len(vectors[0])
	rows := make([][]feature, len(vectors))
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: inconsistent vector dimensions", errors.ErrTrainingData)
		}
		rows[i] = sparse(v)
	}
	return trainSparse(ctx, rows, dim, labels, opts)
}

// trainSparse costs O(epochs * (nnz * k + k * dim)) where nnz is the number
// of non-zero entries over all rows.
func trainSparse(ctx context.Context, rows [][]feature, dim int, labels []domain.Category, opts TrainOptions) (*Classifier, error) {
	if len(rows) == 0 || len(rows) != len(labels) || dim == 0 {
		return nil, fmt.Errorf("%w: %d rows of dimension %d for %d labels", errors.ErrTrainingData, len(rows), dim, len(labels))
	}
	classes := distinct(labels)
	if len(classes) < 2 {
		return nil, fmt.Errorf("%w: %d distinct label(s), need at least 2", errors.ErrTrainingData, len(classes))
	}
	classIdx := make(map[domain.Category]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}
	targets := make([]int, len(labels))
	for i, l := range labels {
		targets[i] = classIdx[l]
	}

	if opts.Epochs <= 0 {
		opts = DefaultTrainOptions
	}

	k := len(classes)
	weights := make([][]float64, k)
	gradW := make([][]float64, k)
	for i := range weights {
		weights[i] = make([]float64, dim)
		gradW[i] = make([]float64, dim)
	}
	bias := make([]float64, k)
	gradB := make([]float64, k)
	probs := make([]float64, k)
	n := float64(len(rows))

	for epoch := 0; epoch < opts.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("training stopped at epoch %d: %w", epoch, err)
		}
		for c := range gradW {
			clear(gradW[c])
		}
		clear(gradB)

		for s, x := range rows {
			softmax(weights, bias, x, probs)
			for c := 0; c < k; c++ {
				g := probs[c]
				if c == targets[s] {
					g -= 1
				}
				gradB[c] += g
				row := gradW[c]
				for _, f := range x {
					row[f.index] += g * f.value
				}
			}
		}

		for c := 0; c < k; c++ {
			for j := range weights[c] {
				weights[c][j] -= opts.LearningRate * (gradW[c][j]/n + opts.L2*weights[c][j])
			}
			bias[c] -= opts.LearningRate * gradB[c] / n
		}
	}
	return &Classifier{classes: classes, weights: weights, bias: bias}, nil
}

// RestoreClassifier rebuilds a classifier from persisted parameters.
func RestoreClassifier(classes []domain.Category, weights [][]float64, bias []float64) (*Classifier, error) {
	if len(classes) < 2 || len(weights) != len(classes) || len(bias) != len(classes) {
		return nil, fmt.Errorf("%w: %d classes, %d weight rows, %d biases",
			errors.ErrTrainingData, len(classes), len(weights), len(bias))
	}
	dim := len(weights[0])
	w := make([][]float64, len(weights))
	for i, row := range weights {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: ragged weight matrix", errors.ErrTrainingData)
		}
		w[i] = append([]float64(nil), row...)
	}
	return &Classifier{
		classes: append([]domain.Category(nil), classes...),
		weights: w,
		bias:    append([]float64(nil), bias...),
	}, nil
}

// Predict returns the most probable class and its posterior probability.
// A nil classifier, a vector of the wrong dimension or the zero vector
// gives Degraded.
func (c *Classifier) Predict(vector []float64) Prediction {
	if c == nil || len(vector) != c.Dimension() {
		return Degraded
	}
	return c.predict(sparse(vector))
}

func (c *Classifier) predict(x []feature) Prediction {
	if c == nil || len(c.classes) == 0 || len(x) == 0 {
		return Degraded
	}
	probs := make([]float64, len(c.classes))
	softmax(c.weights, c.bias, x, probs)
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return Prediction{Category: c.classes[best], Confidence: clamp(probs[best], 0, 1)}
}

// Probabilities returns the posterior of every class, in Classes() order.
func (c *Classifier) Probabilities(vector []float64) []float64 {
	if c == nil || len(c.classes) == 0 || len(vector) != c.Dimension() {
		return nil
	}
	probs := make([]float64, len(c.classes))
	softmax(c.weights, c.bias, sparse(vector), probs)
	return probs
}

func (c *Classifier) Classes() []domain.Category {
	return append([]domain.Category(nil), c.classes...)
}

func (c *Classifier) Dimension() int {
	if len(c.weights) == 0 {
		return 0
	}
	return len(c.weights[0])
}

// Weights returns a copy of the weight matrix, one row per class.
func (c *Classifier) Weights() [][]float64 {
	out := make([][]float64, len(c.weights))
	for i, row := range c.weights {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func (c *Classifier) Bias() []float64 {
	return append([]float64(nil), c.bias...)
}

// softmax writes the normalised class probabilities of x into out.
func softmax(weights [][]float64, bias []float64, x []feature, out []float64) {
	maxMargin := math.Inf(-1)
	for c, row := range weights {
		margin := bias[c]
		for _, f := range x {
			margin += row[f.index] * f.value
		}
		out[c] = margin
		if margin > maxMargin {
			maxMargin = margin
		}
	}
	var sum float64
	for c := range out {
		out[c] = math.Exp(out[c] - maxMargin)
		sum += out[c]
	}
	for c := range out {
		out[c] /= sum
	}
}

func distinct(labels []domain.Category) []domain.Category {
	seen := make(map[domain.Category]struct{})
	var out []domain.Category
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
