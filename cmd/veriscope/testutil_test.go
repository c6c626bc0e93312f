// cmd/veriscope/testutil_test.go
package main

import (
	"context"
	"math"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// fakeProvider is a scripted search backend for cascade tests
type fakeProvider struct {
	name   string
	result *SearchResult
	err    error
	calls  []string
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(ctx context.Context, query string) (*SearchResult, error) {
	f.calls = append(f.calls, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// stubClassifier returns a canned local-model signal
type stubClassifier struct {
	signal *PredictionSignal
}

func (s *stubClassifier) Predict(ctx context.Context, text string) *PredictionSignal {
	return s.signal
}

// stubChecker returns a canned AI signal
type stubChecker struct {
	signal *PredictionSignal
}

func (s *stubChecker) Check(ctx context.Context, text string) *PredictionSignal {
	return s.signal
}

// stubValidator returns a canned corroboration result
type stubValidator struct {
	result *CorroborationResult
}

func (s *stubValidator) Validate(ctx context.Context, text string) *CorroborationResult {
	return s.result
}
