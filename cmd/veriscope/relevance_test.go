// cmd/veriscope/relevance_test.go
package main

import "testing"

func TestScoreRanksRelevantFirst(t *testing.T) {
	s := NewRelevanceScorer()

	articles := []Article{
		{Title: "Football results from the weekend", URL: "http://a", Description: "League standings"},
		{Title: "NASA announces planet discovery", URL: "http://b", Description: "A distant planet beyond the solar system"},
		{Title: "Recipe of the day", URL: "http://c", Description: "Pasta with tomatoes"},
		{Title: "New planet found by astronomers", URL: "http://d", Description: "Observation confirmed"},
	}
	keywords := []string{"NASA", "planet"}
	claim := "NASA discovers distant planet beyond solar system"

	ranked, relevantCount := s.Score(articles, keywords, claim)

	if relevantCount != 2 {
		t.Fatalf("expected 2 relevant articles, got %d", relevantCount)
	}
	if ranked[0].URL != "http://b" {
		t.Errorf("expected the highest-scored article first, got %s", ranked[0].URL)
	}
	if ranked[0].RelevanceScore <= ranked[1].RelevanceScore {
		t.Errorf("expected descending relevance scores, got %f then %f",
			ranked[0].RelevanceScore, ranked[1].RelevanceScore)
	}
	// Low-signal articles trail in original order
	if len(ranked) != 4 {
		t.Fatalf("expected 4 displayed articles, got %d", len(ranked))
	}
	if ranked[2].URL != "http://a" || ranked[3].URL != "http://c" {
		t.Errorf("expected non-relevant articles in original order, got %s, %s",
			ranked[2].URL, ranked[3].URL)
	}
}

func TestScoreNoRelevantArticles(t *testing.T) {
	s := NewRelevanceScorer()

	articles := []Article{
		{Title: "Stock markets close higher", URL: "http://a"},
		{Title: "Weather forecast for Friday", URL: "http://b"},
	}

	ranked, relevantCount := s.Score(articles, []string{"NASA"}, "NASA launches rocket")
	if relevantCount != 0 {
		t.Errorf("expected 0 relevant articles, got %d", relevantCount)
	}
	if len(ranked) != len(articles) {
		t.Errorf("expected original articles back, got %d", len(ranked))
	}
}

func TestScoreTextWordOverlapAlone(t *testing.T) {
	s := NewRelevanceScorer()

	// No keyword hits, but three distinct long claim words appear
	articles := []Article{
		{Title: "Astronauts prepare lunar mission for upcoming launch", URL: "http://a"},
	}
	claim := "astronauts training for lunar mission launch window"

	_, relevantCount := s.Score(articles, []string{"zzzzz"}, claim)
	if relevantCount != 1 {
		t.Errorf("expected text-word overlap to qualify the article, got %d", relevantCount)
	}
}

func TestScoreTruncatesRelevant(t *testing.T) {
	s := NewRelevanceScorer()

	var articles []Article
	for _, u := range []string{"1", "2", "3", "4", "5"} {
		articles = append(articles, Article{
			Title: "NASA planet discovery update",
			URL:   "http://" + u,
		})
	}

	ranked, relevantCount := s.Score(articles, []string{"NASA", "planet"}, "NASA finds planet")
	if relevantCount != 5 {
		t.Fatalf("expected all 5 relevant, got %d", relevantCount)
	}
	if len(ranked) != maxRelevantShown {
		t.Errorf("expected %d displayed articles, got %d", maxRelevantShown, len(ranked))
	}
	if relevantCount > len(articles) {
		t.Error("relevant count exceeds supplied articles")
	}
}
