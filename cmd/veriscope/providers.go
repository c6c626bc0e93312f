// cmd/veriscope/providers.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// NewsProvider is one search backend in the corroboration cascade. Search
// returns the raw provider payload; any failure (timeout, non-2xx, malformed
// payload) is an error the cascade treats as "no result".
type NewsProvider interface {
	Name() string
	Search(ctx context.Context, query string) (*SearchResult, error)
}

const (
	providerTimeout    = 10 * time.Second
	maxRawArticles     = 10
	maxDescriptionRune = 200
)

// newProviderClient builds the shared HTTP client used by provider adapters
func newProviderClient() *http.Client {
	return &http.Client{
		Timeout: providerTimeout,
	}
}

// stripHTML extracts plain text from an HTML fragment. Google News wraps item
// descriptions in anchor markup.
func stripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.TrimSpace(doc.Text())
}

// GoogleNewsProvider searches the free Google News RSS index
type GoogleNewsProvider struct {
	client    *http.Client
	parser    *gofeed.Parser
	userAgent string
	baseURL   string
}

// NewGoogleNewsProvider creates the Google News RSS adapter
func NewGoogleNewsProvider(userAgent string) *GoogleNewsProvider {
	return &GoogleNewsProvider{
		client:    newProviderClient(),
		parser:    gofeed.NewParser(),
		userAgent: userAgent,
		baseURL:   "https://news.google.com/rss/search",
	}
}

// Name returns the provider identifier
func (p *GoogleNewsProvider) Name() string { return "google_news" }

// Search queries the Google News RSS feed
func (p *GoogleNewsProvider) Search(ctx context.Context, query string) (*SearchResult, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", p.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := p.parser.Parse(resp.Body)
	if err != nil {
		return nil, NewProviderError(ErrProviderParse, "failed to parse Google News feed", err)
	}

	var articles []Article
	for _, item := range feed.Items {
		if len(articles) >= maxRawArticles {
			break
		}
		if item.Title == "" || item.Link == "" {
			continue
		}

		description := stripHTML(item.Description)
		if description == "" {
			description = truncate(item.Title, maxDescriptionRune)
		}

		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.Link,
			Source:      "Google News",
			PublishedAt: item.Published,
			Description: truncate(description, maxDescriptionRune),
		})
	}

	return &SearchResult{
		TotalResults: len(articles),
		Articles:     articles,
	}, nil
}

// NewsAPIProvider searches the metered newsapi.org index. Built only when a
// credential is configured.
type NewsAPIProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
	window  time.Duration
}

// NewNewsAPIProvider creates the NewsAPI adapter
func NewNewsAPIProvider(apiKey string) *NewsAPIProvider {
	return &NewsAPIProvider{
		client:  newProviderClient(),
		apiKey:  apiKey,
		baseURL: "https://newsapi.org/v2/everything",
		window:  7 * 24 * time.Hour,
	}
}

// Name returns the provider identifier
func (p *NewsAPIProvider) Name() string { return "newsapi" }

// newsAPIResponse mirrors the newsapi.org everything payload
type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search queries NewsAPI for recent articles matching the query
func (p *NewsAPIProvider) Search(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("from", time.Now().Add(-p.window).Format("2006-01-02"))
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", maxRawArticles))
	params.Set("apiKey", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload newsAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewProviderError(ErrProviderParse, "failed to parse NewsAPI response", err)
	}

	var articles []Article
	for _, a := range payload.Articles {
		if len(articles) >= maxRawArticles {
			break
		}
		articles = append(articles, Article{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			Description: truncate(a.Description, maxDescriptionRune),
		})
	}

	return &SearchResult{
		TotalResults: payload.TotalResults,
		Articles:     articles,
	}, nil
}

// SerpAPIProvider searches Google News through the SerpAPI search engine
// gateway. Built only when a credential is configured.
type SerpAPIProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewSerpAPIProvider creates the SerpAPI adapter
func NewSerpAPIProvider(apiKey string) *SerpAPIProvider {
	return &SerpAPIProvider{
		client:  newProviderClient(),
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search.json",
	}
}

// Name returns the provider identifier
func (p *SerpAPIProvider) Name() string { return "serpapi" }

// serpAPIResponse mirrors the SerpAPI news payload. The source field is a
// plain string in older result shapes and an object in newer ones.
type serpAPIResponse struct {
	NewsResults []struct {
		Title   string          `json:"title"`
		Link    string          `json:"link"`
		Date    string          `json:"date"`
		Snippet string          `json:"snippet"`
		Source  json.RawMessage `json:"source"`
	} `json:"news_results"`
}

// Search queries SerpAPI's Google News vertical
func (p *SerpAPIProvider) Search(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("tbm", "nws")
	params.Set("num", fmt.Sprintf("%d", maxRawArticles))
	params.Set("api_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload serpAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewProviderError(ErrProviderParse, "failed to parse SerpAPI response", err)
	}

	var articles []Article
	for _, item := range payload.NewsResults {
		if len(articles) >= maxRawArticles {
			break
		}
		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.Link,
			Source:      decodeSerpSource(item.Source),
			PublishedAt: item.Date,
			Description: truncate(item.Snippet, maxDescriptionRune),
		})
	}

	return &SearchResult{
		TotalResults: len(payload.NewsResults),
		Articles:     articles,
	}, nil
}

// decodeSerpSource tolerates both source shapes SerpAPI has shipped
func decodeSerpSource(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asObject struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		return asObject.Name
	}
	return ""
}

// BuildProviders assembles the ordered cascade from configuration. Providers
// without a configured credential are skipped at build time, not per call.
func BuildProviders(cfg *Config, order []ProviderConfig) []NewsProvider {
	var providers []NewsProvider
	for _, pc := range order {
		if !pc.Enabled {
			continue
		}
		switch pc.Name {
		case "google_news":
			providers = append(providers, NewGoogleNewsProvider(cfg.UserAgent))
		case "newsapi":
			if cfg.NewsAPIKey != "" {
				providers = append(providers, NewNewsAPIProvider(cfg.NewsAPIKey))
			}
		case "serpapi":
			if cfg.SerpAPIKey != "" {
				providers = append(providers, NewSerpAPIProvider(cfg.SerpAPIKey))
			}
		default:
			Logger().Warning("Unknown search provider in cascade config: %s", pc.Name)
		}
	}
	return providers
}
