// cmd/veriscope/relevance.go
package main

import (
	"sort"
	"strings"
)

// RelevanceScorer ranks provider articles against the original claim using
// keyword and word-overlap heuristics. There is no ground truth here; the
// scores only order evidence for the corroboration classifier.
type RelevanceScorer struct{}

// NewRelevanceScorer creates a new relevance scorer
func NewRelevanceScorer() *RelevanceScorer {
	return &RelevanceScorer{}
}

const (
	maxScoredKeywords  = 5
	minTextWordLength  = 5
	relevantKeywordMin = 1
	relevantTextMin    = 3
	maxRelevantShown   = 3
	maxOtherShown      = 2
)

// Score assigns relevance scores, then returns the display ordering (relevant
// articles by descending score, capped, followed by a couple of low-signal
// ones in original order) and the relevant-article count before truncation.
func (s *RelevanceScorer) Score(articles []Article, keywords []string, claimText string) ([]Article, int) {
	textWords := claimWords(claimText)

	var relevant []Article
	relevantURLs := make(map[string]struct{})

	for _, article := range articles {
		body := fold(article.Title + " " + article.Description)

		keywordMatches := 0
		for _, kw := range takeFirst(keywords, maxScoredKeywords) {
			if strings.Contains(body, fold(kw)) {
				keywordMatches++
			}
		}

		textMatches := 0
		for w := range textWords {
			if strings.Contains(body, w) {
				textMatches++
			}
		}

		if keywordMatches >= relevantKeywordMin || textMatches >= relevantTextMin {
			article.RelevanceScore = float64(keywordMatches) + 0.5*float64(textMatches)
			relevant = append(relevant, article)
			relevantURLs[article.URL] = struct{}{}
		}
	}

	relevantCount := len(relevant)
	if relevantCount == 0 {
		return articles, 0
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].RelevanceScore > relevant[j].RelevanceScore
	})

	ranked := make([]Article, 0, maxRelevantShown+maxOtherShown)
	ranked = append(ranked, relevant[:minInt(len(relevant), maxRelevantShown)]...)

	others := 0
	for _, article := range articles {
		if others >= maxOtherShown {
			break
		}
		if _, isRelevant := relevantURLs[article.URL]; isRelevant {
			continue
		}
		ranked = append(ranked, article)
		others++
	}

	return ranked, relevantCount
}

// claimWords collects the distinct folded words of length >4 from the claim
func claimWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		if len(w) > minTextWordLength-1 {
			words[fold(w)] = struct{}{}
		}
	}
	return words
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
