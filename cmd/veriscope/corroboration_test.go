// cmd/veriscope/corroboration_test.go
package main

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyCorroboration(t *testing.T) {
	tests := []struct {
		totalResults  int
		relevantCount int
		status        VerificationStatus
		confidence    float64
	}{
		{0, 0, StatusUnverified, 0.3},
		{5, 0, StatusNotFound, 0.4},
		{5, 1, StatusLimited, 0.6},
		{5, 2, StatusFound, 0.7},
		{5, 3, StatusFound, 0.8},
		{10, 5, StatusFound, 0.9},
		{20, 9, StatusFound, 0.9}, // capped
	}

	for _, tt := range tests {
		status, confidence, message := classifyCorroboration(tt.totalResults, tt.relevantCount)
		if status != tt.status {
			t.Errorf("classify(%d, %d) status = %s, expected %s",
				tt.totalResults, tt.relevantCount, status, tt.status)
		}
		if !almostEqual(confidence, tt.confidence) {
			t.Errorf("classify(%d, %d) confidence = %f, expected %f",
				tt.totalResults, tt.relevantCount, confidence, tt.confidence)
		}
		if message == "" {
			t.Errorf("classify(%d, %d) returned empty message", tt.totalResults, tt.relevantCount)
		}
	}
}

func TestValidateServiceUnavailable(t *testing.T) {
	broken := &fakeProvider{name: "broken", err: errors.New("dns failure")}
	v := NewNewsValidator(NewCascade([]NewsProvider{broken}))

	result := v.Validate(context.Background(), "NASA discovers new planet")
	if result.Status != StatusUnavailable {
		t.Fatalf("expected %s, got %s", StatusUnavailable, result.Status)
	}
	if !almostEqual(result.Confidence, 0.5) {
		t.Errorf("expected neutral 0.5 confidence, got %f", result.Confidence)
	}
	if result.Articles == nil || len(result.Articles) != 0 {
		t.Errorf("expected empty article list, got %v", result.Articles)
	}
	if len(result.Keywords) > 3 {
		t.Errorf("expected at most 3 keywords, got %d", len(result.Keywords))
	}
}

func TestValidateNoMatches(t *testing.T) {
	empty := &fakeProvider{name: "empty", result: &SearchResult{TotalResults: 0}}
	v := NewNewsValidator(NewCascade([]NewsProvider{empty}))

	result := v.Validate(context.Background(), "NASA discovers new planet")
	if result.Status != StatusUnverified {
		t.Fatalf("expected %s, got %s", StatusUnverified, result.Status)
	}
	if !almostEqual(result.Confidence, 0.3) {
		t.Errorf("expected 0.3 confidence, got %f", result.Confidence)
	}
}

func TestValidateRelevantCoverage(t *testing.T) {
	provider := &fakeProvider{name: "rich", result: &SearchResult{
		TotalResults: 4,
		Articles: []Article{
			{Title: "NASA confirms planet discovery", URL: "http://1"},
			{Title: "New planet spotted by NASA telescope", URL: "http://2"},
			{Title: "Sports roundup", URL: "http://3"},
			{Title: "NASA planet findings draw attention", URL: "http://4"},
		},
	}}
	v := NewNewsValidator(NewCascade([]NewsProvider{provider}))

	result := v.Validate(context.Background(), "NASA discovers new planet")
	if result.Status != StatusFound {
		t.Fatalf("expected %s, got %s", StatusFound, result.Status)
	}
	if result.RelevantCount != 3 {
		t.Errorf("expected 3 relevant articles, got %d", result.RelevantCount)
	}
	if !almostEqual(result.Confidence, 0.8) {
		t.Errorf("expected 0.8 confidence, got %f", result.Confidence)
	}
	if len(result.Articles) > maxDisplayedArticles {
		t.Errorf("expected at most %d displayed articles, got %d",
			maxDisplayedArticles, len(result.Articles))
	}
}
