// cmd/veriscope/query.go
package main

import "strings"

// QueryBuilder turns claim text into an effective news search query. Short
// claims are already optimal queries and pass through verbatim; long claims
// degrade to a keyword query and finally to truncated text.
type QueryBuilder struct {
	extractor *KeywordExtractor
}

// NewQueryBuilder creates a new query builder
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{extractor: NewKeywordExtractor()}
}

const (
	directQueryMaxLength = 150
	fallbackQueryLength  = 100
	maxQueryTerms        = 5
)

// Build constructs a search query string from claim text
func (b *QueryBuilder) Build(text string) string {
	clean := strings.Join(strings.Fields(text), " ")

	if len(clean) <= directQueryMaxLength {
		return clean
	}

	keywords := b.extractor.Extract(text)
	if len(keywords) == 0 {
		return strings.TrimSpace(truncate(clean, fallbackQueryLength))
	}

	// Proper nouns get exact-phrase quoting, common words stay bare
	parts := make([]string, 0, maxQueryTerms)
	for _, kw := range takeFirst(keywords, maxQueryTerms) {
		if kw[0] >= 'A' && kw[0] <= 'Z' {
			parts = append(parts, `"`+kw+`"`)
		} else {
			parts = append(parts, kw)
		}
	}

	return strings.Join(parts, " ")
}

// BuildQuery bundles the query text with the extracted keywords so the cascade
// can retry keyword-only
func (b *QueryBuilder) BuildQuery(text string) SearchQuery {
	return SearchQuery{
		Text:     b.Build(text),
		Keywords: b.extractor.Extract(text),
	}
}

// keywordRetryQuery is the reduced query used when a provider finds nothing
// for the full query. With no keywords to fall back on it reuses a prefix of
// the primary query.
func keywordRetryQuery(query SearchQuery) string {
	if len(query.Keywords) > 0 {
		return strings.Join(takeFirst(query.Keywords, 4), " ")
	}
	return strings.TrimSpace(truncate(query.Text, 50))
}
