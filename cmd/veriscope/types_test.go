// cmd/veriscope/types_test.go
package main

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateShortStringUntouched(t *testing.T) {
	if got := truncate("abc", 10); got != "abc" {
		t.Errorf("expected untouched string, got %q", got)
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	s := "la réunion à Genève était confirmée"

	got := truncate(s, 10)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Errorf("expected 10 runes, got %d (%q)", n, got)
	}
}
