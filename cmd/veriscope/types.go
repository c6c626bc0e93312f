// cmd/veriscope/types.go
package main

const (
	// Labels of the binary verdict domain
	LabelFake = "fake"
	LabelReal = "real"
)

// SignalSource identifies which collaborator produced a prediction signal
type SignalSource string

const (
	SignalLocalModel SignalSource = "local_model"
	SignalAIChecker  SignalSource = "ai_checker"
)

// PredictionSignal is a single collaborator's take on a claim. Signals are
// produced once per evaluation and never mutated afterwards.
type PredictionSignal struct {
	Source        SignalSource       `json:"source"`
	Label         string             `json:"label"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	RawText       string             `json:"raw_text,omitempty"`
}

// SearchQuery carries the query text plus the extracted keywords used for
// keyword-only retries. Built fresh per claim, never mutated.
type SearchQuery struct {
	Text     string
	Keywords []string
}

// Article is one news item returned by a search provider. RelevanceScore is
// assigned after the fact by the relevance scorer.
type Article struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Source         string  `json:"source"`
	PublishedAt    string  `json:"published_at,omitempty"`
	Description    string  `json:"description"`
	RelevanceScore float64 `json:"relevance_score,omitempty"`
}

// SearchResult is the raw payload a provider returns before scoring
type SearchResult struct {
	TotalResults int
	Articles     []Article
}

// VerificationStatus classifies the outcome of the corroboration check
type VerificationStatus string

const (
	StatusFound       VerificationStatus = "found"
	StatusLimited     VerificationStatus = "limited"
	StatusNotFound    VerificationStatus = "not_found"
	StatusUnverified  VerificationStatus = "unverified"
	StatusUnavailable VerificationStatus = "unavailable"
)

// CorroborationResult is the audit record of a news corroboration check.
// Status is StatusUnavailable only when no provider returned any response,
// which is a service outage, not an evidentiary absence.
type CorroborationResult struct {
	Status        VerificationStatus `json:"verification_status"`
	Confidence    float64            `json:"confidence"`
	Message       string             `json:"message"`
	TotalResults  int                `json:"total_results"`
	RelevantCount int                `json:"relevant_articles"`
	Articles      []Article          `json:"articles"`
	Keywords      []string           `json:"search_keywords"`
	Query         string             `json:"search_query"`
}

// Verdict is the final, reconciled answer for one claim. IsFake always equals
// (Label == LabelFake); any stage that changes Label recomputes it in the same
// step.
type Verdict struct {
	Label                string             `json:"prediction"`
	Confidence           float64            `json:"confidence"`
	Probabilities        map[string]float64 `json:"probabilities"`
	IsFake               bool               `json:"is_fake"`
	Insight              string             `json:"news_insight,omitempty"`
	ConfidenceAdjustment float64            `json:"confidence_adjustment"`
}

// binaryProbabilities reconstructs a fake/real probability split from a single
// label+confidence pair
func binaryProbabilities(label string, confidence float64) map[string]float64 {
	fake := confidence
	if label != LabelFake {
		fake = 1 - confidence
	}
	return map[string]float64{
		LabelFake: fake,
		LabelReal: 1 - fake,
	}
}

// truncate shortens s to at most n runes, never splitting a multi-byte rune
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
