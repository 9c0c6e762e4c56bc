package priority

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// KeywordMatcher finds case-insensitive substring occurrences of a fixed
// keyword list with a single Aho-Corasick pass.
type KeywordMatcher struct {
	machine *goahocorasick.Machine
}

// NewKeywordMatcher builds the automaton over the lower-cased keywords.
// Blank keywords are ignored; a matcher without keyword never matches.
func NewKeywordMatcher(keywords []string) (*KeywordMatcher, error) {
	patterns := make([][]rune, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, word := range keywords {
		word = strings.ToLower(strings.TrimSpace(word))
		if _, dup := seen[word]; dup || word == "" {
			continue
		}
		seen[word] = struct{}{}
		patterns = append(patterns, normalize(word))
	}
	if len(patterns) == 0 {
		return &KeywordMatcher{}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &KeywordMatcher{machine: m}, nil
}

// Contains reports whether any keyword occurs in text.
func (k *KeywordMatcher) Contains(text string) bool {
	return len(k.Find(text)) > 0
}

// Find returns the keywords found in text, in order of appearance.
func (k *KeywordMatcher) Find(text string) []string {
	if k == nil || k.machine == nil || text == "" {
		return nil
	}
	terms := k.machine.MultiPatternSearch(normalize(text), false)
	if len(terms) == 0 {
		return nil
	}
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		found = append(found, string(term.Word))
	}
	return found
}

func normalize(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
