// cmd/veriscope/keywords.go
package main

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// KeywordExtractor pulls salient search terms out of raw claim text. Proper
// nouns (names, places, organizations) are the highest-precision search
// anchors, so they are kept ahead of common words.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a new keyword extractor
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

const (
	maxProperNouns = 4
	maxCommonWords = 3
	maxKeywords    = 6
)

var wordPattern = regexp.MustCompile(`[A-Za-z]{3,}`)

// folder performs Unicode case folding for case-insensitive comparisons
var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}

// stopWords are filtered out of keyword extraction. The list includes generic
// news vocabulary that matches almost any article.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "is", "are", "was", "were", "been", "be", "have", "has",
		"had", "do", "does", "did", "will", "would", "could", "should", "may",
		"might", "can", "said", "says", "that", "this", "they", "their", "them",
		"there", "these", "those", "what", "which", "when", "where", "who", "whom",
		"how", "why", "just", "only", "even", "also", "very", "most", "some",
		"many", "much", "more", "other", "than", "then", "now", "here", "such",
		"like", "into", "over", "after", "before", "between", "under", "again",
		"about", "being", "once", "during", "each", "because", "through", "while",
		"news", "breaking", "report", "according", "announced", "claims",
		"article", "story", "sources", "officials", "people", "percent", "years",
	} {
		stopWords[w] = struct{}{}
	}
}

// Extract returns up to 6 keywords from text, proper nouns first, then common
// words, deduplicated case-insensitively in first-seen order. Text with no
// qualifying tokens yields an empty slice; callers must fall back to the raw
// text in that case.
func (e *KeywordExtractor) Extract(text string) []string {
	words := wordPattern.FindAllString(text, -1)

	var properNouns, commonWords []string
	for _, w := range words {
		lower := strings.ToLower(w)
		if _, stop := stopWords[lower]; stop {
			continue
		}
		if w[0] >= 'A' && w[0] <= 'Z' {
			properNouns = append(properNouns, w)
		} else {
			commonWords = append(commonWords, lower)
		}
	}

	candidates := append(takeFirst(properNouns, maxProperNouns), takeFirst(commonWords, maxCommonWords)...)

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, k := range candidates {
		folded := fold(k)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		keywords = append(keywords, k)
	}

	return takeFirst(keywords, maxKeywords)
}

// takeFirst returns at most n leading elements of s
func takeFirst(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
