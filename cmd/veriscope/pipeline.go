// cmd/veriscope/pipeline.go
package main

import (
	"context"
	"sync"
)

// ClaimClassifier is the local-model collaborator contract
type ClaimClassifier interface {
	Predict(ctx context.Context, text string) *PredictionSignal
}

// FactChecker is the generative fact-checker collaborator contract
type FactChecker interface {
	Check(ctx context.Context, text string) *PredictionSignal
}

// ClaimValidator is the news corroboration contract
type ClaimValidator interface {
	Validate(ctx context.Context, text string) *CorroborationResult
}

// Pipeline evaluates claims end to end: fan out to the classifier, the AI
// checker and the news validator, join, reconcile, then adjust. No shared
// mutable state crosses claims, so batches parallelize freely.
type Pipeline struct {
	classifier ClaimClassifier
	checker    FactChecker
	validator  ClaimValidator
	workers    int
}

// NewPipeline wires the claim evaluation pipeline. A nil validator disables
// news corroboration; the adjuster then attaches the not-available insight.
func NewPipeline(classifier ClaimClassifier, checker FactChecker, validator ClaimValidator, workers int) *Pipeline {
	if workers <= 0 {
		workers = 4
	}
	return &Pipeline{
		classifier: classifier,
		checker:    checker,
		validator:  validator,
		workers:    workers,
	}
}

// Evaluation is the full outcome for one claim: the verdict plus the
// corroboration audit record.
type Evaluation struct {
	Text string `json:"text"`
	Verdict
	Corroboration *CorroborationResult `json:"news_validation,omitempty"`
}

// Evaluate runs the pipeline for a single claim. The three external calls are
// independent and bounded by their own timeouts, so they run concurrently and
// join before reconciliation.
func (p *Pipeline) Evaluate(ctx context.Context, text string) Evaluation {
	var (
		local         *PredictionSignal
		ai            *PredictionSignal
		corroboration *CorroborationResult
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		local = p.classifier.Predict(ctx, text)
	}()

	if p.checker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ai = p.checker.Check(ctx, text)
		}()
	}

	if p.validator != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			corroboration = p.validator.Validate(ctx, text)
		}()
	}

	wg.Wait()

	verdict := ReconcileVerdicts(local, ai)
	verdict = AdjustVerdict(verdict, corroboration)

	IncrementCounter("predictions")

	return Evaluation{
		Text:          text,
		Verdict:       verdict,
		Corroboration: corroboration,
	}
}

// EvaluateBatch evaluates claims on a bounded worker pool. Results keep input
// order.
func (p *Pipeline) EvaluateBatch(ctx context.Context, texts []string) []Evaluation {
	results := make([]Evaluation, len(texts))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = p.Evaluate(ctx, text)
		}(i, text)
	}

	wg.Wait()
	return results
}
