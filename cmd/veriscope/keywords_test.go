// cmd/veriscope/keywords_test.go
package main

import (
	"strings"
	"testing"
)

func TestExtractProperNounsFirst(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("Scientists discover new planet in solar system")
	if len(keywords) == 0 {
		t.Fatal("expected keywords, got none")
	}
	if keywords[0] != "Scientists" {
		t.Errorf("expected proper noun first, got %q", keywords[0])
	}
	for _, kw := range keywords[1:] {
		if kw[0] >= 'A' && kw[0] <= 'Z' {
			t.Errorf("common words must follow proper nouns, got %q after %q", kw, keywords[0])
		}
	}
}

func TestExtractFiltersStopWords(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("The president said that Washington was winning")
	for _, kw := range keywords {
		if _, stop := stopWords[strings.ToLower(kw)]; stop {
			t.Errorf("stop word %q leaked into keywords", kw)
		}
	}
	if keywords[0] != "Washington" {
		t.Errorf("expected Washington first, got %q", keywords[0])
	}
}

func TestExtractDeduplicatesCaseInsensitively(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("NASA nasa NASA launches nasa rocket")
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		folded := strings.ToLower(kw)
		if _, dup := seen[folded]; dup {
			t.Errorf("duplicate keyword %q", kw)
		}
		seen[folded] = struct{}{}
	}
}

func TestExtractLengthBound(t *testing.T) {
	e := NewKeywordExtractor()

	text := "Washington London Paris Berlin Tokyo climate economy election treaty summit"
	keywords := e.Extract(text)
	if len(keywords) > maxKeywords {
		t.Errorf("expected at most %d keywords, got %d", maxKeywords, len(keywords))
	}
}

func TestExtractEmptyResult(t *testing.T) {
	e := NewKeywordExtractor()

	for _, text := range []string{"", "a is to", "12 34 !!", "ab cd"} {
		if keywords := e.Extract(text); len(keywords) != 0 {
			t.Errorf("Extract(%q) = %v, expected none", text, keywords)
		}
	}
}
