// Package sentiment scores complaint polarity with a fixed lexicon.
package sentiment

import (
	"complaint-triage/ai"
	"complaint-triage/domain"
	"math"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

const (
	negativeThreshold = -0.3
	positiveThreshold = 0.3
)

type Result struct {
	Label domain.Sentiment
	Score float64
	Emoji string
	Lang  string
}

var neutralResult = Result{Label: domain.Neutral, Score: 0, Emoji: Emoji(domain.Neutral)}

type Analyzer struct {
	lexicon map[string]float64
}

// NewAnalyzer builds an analyzer over the built-in lexicon.
// Extra entries override or extend it; weights are clamped to [-1, 1].
func NewAnalyzer(extra map[string]float64) *Analyzer {
	l := make(map[string]float64, len(lexicon)+len(extra))
	for term, w := range lexicon {
		l[term] = w
	}
	for term, w := range extra {
		l[term] = math.Max(-1, math.Min(1, w))
	}
	return &Analyzer{lexicon: l}
}

// Polarity averages the weights of the tokens found in the lexicon.
func (a *Analyzer) Polarity(text string) float64 {
	var sum float64
	var hits int
	for _, token := range ai.Tokenize(text) {
		if w, ok := a.lexicon[token]; ok {
			sum += w
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, sum/float64(hits)))
}

// Analyze labels text as negative, neutral or positive.
// Empty or invalid input is neutral.
func (a *Analyzer) Analyze(text string) Result {
	if text == "" || !utf8.ValidString(text) {
		return neutralResult
	}
	score := a.Polarity(text)
	label := Label(score)
	return Result{
		Label: label,
		Score: score,
		Emoji: Emoji(label),
		Lang:  whatlanggo.Detect(text).Lang.Iso6391(),
	}
}

// Label applies the fixed thresholds, negative first.
func Label(score float64) domain.Sentiment {
	switch {
	case score < negativeThreshold:
		return domain.Negative
	case score > positiveThreshold:
		return domain.Positive
	default:
		return domain.Neutral
	}
}

func Emoji(label domain.Sentiment) string {
	switch label {
	case domain.Negative:
		return "😞"
	case domain.Positive:
		return "😊"
	default:
		return "😐"
	}
}
