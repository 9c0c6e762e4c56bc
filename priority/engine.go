// Package priority turns a complaint into a priority tier and an SLA.
//
// The policy is an ordered table of rules; the first matching rule wins.
package priority

import (
	"complaint-triage/domain"
	"time"
)

type Decision struct {
	Priority domain.Priority
	SLAHours int
	Rule     string
}

// Rule is one row of the policy table.
type Rule struct {
	Name     string
	Match    func(text string, sentiment domain.Sentiment) bool
	Priority domain.Priority
	SLAHours int
}

// Fallback applies when no rule matches.
var Fallback = Decision{Priority: domain.Medium, SLAHours: 72, Rule: "default"}

type Engine struct {
	rules []Rule
}

// NewEngine builds the standard rule table from a keyword policy.
func NewEngine(policy Policy) (*Engine, error) {
	critical, err := NewKeywordMatcher(policy.CriticalKeywords)
	if err != nil {
		return nil, err
	}
	high, err := NewKeywordMatcher(policy.HighKeywords)
	if err != nil {
		return nil, err
	}
	return NewEngineWithRules([]Rule{
		{
			Name:     "critical_keyword",
			Match:    func(text string, _ domain.Sentiment) bool { return critical.Contains(text) },
			Priority: domain.Critical,
			SLAHours: 4,
		},
		{
			Name:     "high_keyword",
			Match:    func(text string, _ domain.Sentiment) bool { return high.Contains(text) },
			Priority: domain.High,
			SLAHours: 24,
		},
		{
			Name:     "negative_sentiment",
			Match:    func(_ string, s domain.Sentiment) bool { return s == domain.Negative },
			Priority: domain.High,
			SLAHours: 24,
		},
		{
			Name:     "positive_sentiment",
			Match:    func(_ string, s domain.Sentiment) bool { return s == domain.Positive },
			Priority: domain.Low,
			SLAHours: 168,
		},
	}), nil
}

// NewEngineWithRules uses the given table as is.
// Inputs matching no rule fall back to medium / 72h.
func NewEngineWithRules(rules []Rule) *Engine {
	return &Engine{rules: append([]Rule(nil), rules...)}
}

// Evaluate walks the rules in order and returns the first match.
func (e *Engine) Evaluate(text string, sentiment domain.Sentiment) Decision {
	for _, r := range e.rules {
		if r.Match != nil && r.Match(text, sentiment) {
			return Decision{Priority: r.Priority, SLAHours: r.SLAHours, Rule: r.Name}
		}
	}
	return Fallback
}

func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Deadline is the instant an SLA of slaHours expires.
func Deadline(createdAt time.Time, slaHours int) time.Time {
	return createdAt.Add(time.Duration(slaHours) * time.Hour)
}
