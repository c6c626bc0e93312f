// cmd/veriscope/adjust.go
package main

// Insight strings attached to the final verdict
const (
	insightNotFound    = "No recent news coverage found. Treat with caution."
	insightFound       = "Confirmed by multiple news sources."
	insightLimited     = "Limited news coverage found."
	insightUnverified  = "Unable to verify against news sources."
	insightUnavailable = "News validation not available."
)

// AdjustVerdict applies the corroboration outcome as a bounded adjustment to
// the reconciled verdict and attaches the explanatory insight. Pure: the input
// verdict is copied, never mutated. Confidence shifts only apply to "real"
// predictions; missing news coverage is weak evidence against a claim being
// real but says little about a claim already judged fake.
func AdjustVerdict(verdict Verdict, corroboration *CorroborationResult) Verdict {
	adjusted := verdict

	if corroboration == nil {
		adjusted.Insight = insightUnavailable
		adjusted.ConfidenceAdjustment = 0
		adjusted.IsFake = adjusted.Label == LabelFake
		return adjusted
	}

	switch corroboration.Status {
	case StatusNotFound:
		adjusted.Insight = insightNotFound
		adjusted.ConfidenceAdjustment = -0.10
		if adjusted.Label == LabelReal {
			adjusted.Confidence -= 0.15
			if adjusted.Confidence < 0.3 {
				adjusted.Confidence = 0.3
			}
		}

	case StatusFound:
		adjusted.Insight = insightFound
		adjusted.ConfidenceAdjustment = 0.15
		if adjusted.Label == LabelReal {
			adjusted.Confidence += 0.15
			if adjusted.Confidence > 0.95 {
				adjusted.Confidence = 0.95
			}
		}

	case StatusLimited:
		adjusted.Insight = insightLimited
		adjusted.ConfidenceAdjustment = 0.05

	default: // unverified, unavailable
		adjusted.Insight = insightUnverified
		adjusted.ConfidenceAdjustment = 0
	}

	adjusted.IsFake = adjusted.Label == LabelFake
	return adjusted
}
