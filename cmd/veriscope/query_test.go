// cmd/veriscope/query_test.go
package main

import (
	"strings"
	"testing"
)

func TestBuildShortTextVerbatim(t *testing.T) {
	b := NewQueryBuilder()

	query := b.Build("  Scientists   discover new planet  ")
	if query != "Scientists discover new planet" {
		t.Errorf("expected normalized text, got %q", query)
	}

	// Idempotent on short text
	if again := b.Build(query); again != query {
		t.Errorf("Build not idempotent: %q != %q", again, query)
	}
}

func TestBuildLongTextUsesKeywords(t *testing.T) {
	b := NewQueryBuilder()

	text := "NASA confirmed on Tuesday that the Artemis program will return astronauts " +
		"to the lunar surface within this decade, pending further budget approval from " +
		"Congress and successful completion of several uncrewed test flights"
	if len(text) <= directQueryMaxLength {
		t.Fatalf("test text must exceed %d characters", directQueryMaxLength)
	}

	query := b.Build(text)
	if !strings.Contains(query, `"NASA"`) {
		t.Errorf("expected quoted proper noun in %q", query)
	}
	if terms := strings.Fields(query); len(terms) > maxQueryTerms {
		t.Errorf("expected at most %d terms, got %d", maxQueryTerms, len(terms))
	}
}

func TestBuildLongTextWithoutKeywordsTruncates(t *testing.T) {
	b := NewQueryBuilder()

	text := strings.TrimSpace(strings.Repeat("aa ", 80))
	if len(text) <= directQueryMaxLength {
		t.Fatalf("test text must exceed %d characters", directQueryMaxLength)
	}

	query := b.Build(text)
	if len(query) > fallbackQueryLength {
		t.Errorf("expected at most %d characters, got %d", fallbackQueryLength, len(query))
	}
	if query == "" {
		t.Error("expected non-empty fallback query")
	}
}

func TestKeywordRetryQuery(t *testing.T) {
	query := SearchQuery{
		Text:     "some long query text",
		Keywords: []string{"NASA", "Artemis", "lunar", "budget", "flights"},
	}
	if got := keywordRetryQuery(query); got != "NASA Artemis lunar budget" {
		t.Errorf("expected first four keywords, got %q", got)
	}

	noKeywords := SearchQuery{Text: "some long query text"}
	got := keywordRetryQuery(noKeywords)
	if got == "" || len(got) > 50 {
		t.Errorf("expected text prefix of at most 50 characters, got %q", got)
	}
}
