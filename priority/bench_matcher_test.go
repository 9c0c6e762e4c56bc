package priority

import (
	"complaint-triage/domain"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Matcher_LargeKeywordList(t *testing.T) {
	req := require.New(t)
	keywords := make([]string, 0, 50_000)
	for i := 0; i < cap(keywords); i++ {
		keywords = append(keywords, fmt.Sprintf("outage-%d", i))
	}

	start := time.Now()
	matcher, err := NewKeywordMatcher(keywords)
	req.NoError(err)
	t.Logf("built automaton over %d keywords in %v", len(keywords), time.Since(start))

	req.True(matcher.Contains("Region OUTAGE-49999 is down"))
	req.False(matcher.Contains("no outage here"))
}

func BenchmarkKeywordMatcher_Contains(b *testing.B) {
	policy, err := DefaultPolicy()
	if err != nil {
		b.Fatal(err)
	}
	matcher, err := NewKeywordMatcher(policy.CriticalKeywords)
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("my parcel is late and nobody answers the phone ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Contains(text)
	}
}

func BenchmarkEngine_Evaluate(b *testing.B) {
	policy, err := DefaultPolicy()
	if err != nil {
		b.Fatal(err)
	}
	engine, err := NewEngine(policy)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Evaluate("The app keeps crashing and I lost my order history", domain.Negative)
	}
}
