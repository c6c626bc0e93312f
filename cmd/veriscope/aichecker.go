// cmd/veriscope/aichecker.go
package main

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// AIChecker fact-checks a claim with a generative model. A nil result from
// Check means "disabled or call failed", which is a normal outcome the
// reconciler handles, never an error to propagate.
type AIChecker struct {
	client  *openai.Client
	model   string
	enabled bool
}

// NewAIChecker creates the AI fact checker. Without a key or with the feature
// flag off it stays disabled and Check always returns nil.
func NewAIChecker(cfg *Config) *AIChecker {
	if !cfg.EnableAICheck || cfg.OpenAIAPIKey == "" {
		return &AIChecker{}
	}
	model := cfg.OpenAIModel
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &AIChecker{
		client:  openai.NewClient(cfg.OpenAIAPIKey),
		model:   model,
		enabled: true,
	}
}

// Enabled reports whether the checker will make calls
func (a *AIChecker) Enabled() bool { return a.enabled }

const factCheckPrompt = `You are a fact-checking AI assistant. Analyze the following statement and determine if it's likely to be fake news or real news.

Provide your analysis in the following format:
1. Classification: [FAKE/REAL/UNCERTAIN]
2. Confidence: [percentage, e.g., 85%]
3. Reasoning: [Brief explanation of your classification]
4. Key Points: [List 2-3 key points that influenced your decision]

Be objective and consider:
- Factual accuracy
- Verifiable sources
- Logical consistency
- Common misinformation patterns
- Context and plausibility`

// Check asks the model to fact-check a claim
func (a *AIChecker) Check(ctx context.Context, text string) *PredictionSignal {
	if !a.enabled {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(
		callCtx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: factCheckPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Statement: %q", text),
				},
			},
			Temperature: 0.2,
		},
	)
	if err != nil {
		Logger().Warning("AI fact check failed: %v", err)
		IncrementCounter("ai_errors")
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	IncrementCounter("ai_calls")
	return parseAIReply(resp.Choices[0].Message.Content)
}

var percentPattern = regexp.MustCompile(`(\d+)%`)

// parseAIReply scans an unstructured fact-check reply for a FAKE/REAL token
// and a confidence percentage. A reply with no recognizable token defaults to
// "real" and a reply with no percentage defaults to 0.75, so a malformed
// upstream response degrades instead of failing the claim.
func parseAIReply(reply string) *PredictionSignal {
	label := LabelReal
	for _, line := range strings.Split(reply, "\n") {
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "FAKE") {
			label = LabelFake
			break
		}
		if strings.Contains(upper, "REAL") {
			label = LabelReal
			break
		}
	}

	confidence := 0.75
	for _, line := range strings.Split(reply, "\n") {
		if !strings.Contains(strings.ToLower(line), "confidence") {
			continue
		}
		if match := percentPattern.FindStringSubmatch(line); match != nil {
			if pct, err := strconv.Atoi(match[1]); err == nil {
				confidence = float64(pct) / 100.0
				if confidence > 1 {
					confidence = 1
				}
			}
		}
		break
	}

	return &PredictionSignal{
		Source:        SignalAIChecker,
		Label:         label,
		Confidence:    confidence,
		Probabilities: binaryProbabilities(label, confidence),
		RawText:       reply,
	}
}
