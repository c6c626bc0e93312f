// cmd/veriscope/corroboration.go
package main

import (
	"context"
	"fmt"
)

// NewsValidator corroborates claims against live news indexes. It owns query
// construction, the provider cascade, relevance scoring and the verification
// status classification, and is a pure function of its inputs plus live
// search results.
type NewsValidator struct {
	builder *QueryBuilder
	cascade *Cascade
	scorer  *RelevanceScorer
}

// NewNewsValidator creates a news validator over the given cascade
func NewNewsValidator(cascade *Cascade) *NewsValidator {
	return &NewsValidator{
		builder: NewQueryBuilder(),
		cascade: cascade,
		scorer:  NewRelevanceScorer(),
	}
}

const maxDisplayedArticles = 5

// Validate checks a claim against news sources and returns the corroboration
// record. It never returns an error; every failure path degrades to a status.
func (v *NewsValidator) Validate(ctx context.Context, text string) *CorroborationResult {
	query := v.builder.BuildQuery(text)

	Logger().Debug("Searching news with query: %s", truncate(query.Text, 100))

	result := v.cascade.Search(ctx, query)
	if result == nil {
		// No provider answered at all; a service outage, not missing evidence
		return &CorroborationResult{
			Status:     StatusUnavailable,
			Confidence: 0.5,
			Message:    "News validation service unavailable.",
			Articles:   []Article{},
			Keywords:   takeFirst(query.Keywords, 3),
			Query:      truncate(query.Text, 100),
		}
	}

	ranked, relevantCount := v.scorer.Score(result.Articles, query.Keywords, text)
	status, confidence, message := classifyCorroboration(result.TotalResults, relevantCount)

	articles := ranked
	if len(articles) > maxDisplayedArticles {
		articles = articles[:maxDisplayedArticles]
	}

	return &CorroborationResult{
		Status:        status,
		Confidence:    confidence,
		Message:       message,
		TotalResults:  result.TotalResults,
		RelevantCount: relevantCount,
		Articles:      articles,
		Keywords:      takeFirst(query.Keywords, 4),
		Query:         truncate(query.Text, 100),
	}
}

// classifyCorroboration maps aggregate relevance counts to a verification
// status, a baseline confidence and a display message. The table is evaluated
// in order and is deliberately deterministic.
func classifyCorroboration(totalResults, relevantCount int) (VerificationStatus, float64, string) {
	switch {
	case totalResults == 0:
		return StatusUnverified, 0.3, "No recent news articles found matching this claim."
	case relevantCount >= 2:
		confidence := 0.5 + 0.1*float64(relevantCount)
		if confidence > 0.9 {
			confidence = 0.9
		}
		return StatusFound, confidence, fmt.Sprintf("Found %d relevant news articles discussing this topic.", relevantCount)
	case relevantCount == 1:
		return StatusLimited, 0.6, "Found limited news coverage of this topic."
	default:
		return StatusNotFound, 0.4, "No relevant news articles found. This may be unverified information."
	}
}
