package ai

import (
	"unicode/utf8"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/lang/en"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

var standard = &analysis.Analyzer{
	Tokenizer: tokenizer.NewUnicodeTokenizer(),
	TokenFilters: []analysis.TokenFilter{
		token.NewLowerCaseFilter(),
		en.StopWordsFilter(),
	},
}

// Tokenize splits text into lower-cased terms with English stop words removed.
// Invalid UTF-8 yields no token at all.
func Tokenize(text string) []string {
	if text == "" || !utf8.ValidString(text) {
		return nil
	}
	return terms(standard.Analyze([]byte(text)))
}

func terms(stream analysis.TokenStream) []string {
	out := make([]string, 0, len(stream))
	for _, tok := range stream {
		if len(tok.Term) == 0 {
			continue
		}
		out = append(out, string(tok.Term))
	}
	return out
}
