// cmd/veriscope/cascade.go
package main

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Cascade tries an ordered list of search providers until one produces a
// non-empty result set. Each provider gets the full query first and a
// keyword-only retry if that came back empty, so cheap providers shield the
// metered ones from unnecessary calls.
type Cascade struct {
	providers []NewsProvider
	limiter   *rate.Limiter
	timeout   time.Duration
}

// NewCascade creates a cascade over the given providers. The rate limiter
// throttles outbound search calls across concurrent claim evaluations.
func NewCascade(providers []NewsProvider) *Cascade {
	return &Cascade{
		providers: providers,
		limiter:   rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		timeout:   providerTimeout,
	}
}

// Search runs the cascade. It returns nil only when no provider returned any
// response at all; a provider answering with zero matches yields a result with
// TotalResults == 0 so callers can tell outage from evidentiary absence.
func (c *Cascade) Search(ctx context.Context, query SearchQuery) *SearchResult {
	retry := keywordRetryQuery(query)

	var emptyResponse *SearchResult
	for _, provider := range c.providers {
		for i, q := range []string{query.Text, retry} {
			if q == "" {
				continue
			}
			if i > 0 && q == query.Text {
				// identical retry adds nothing
				continue
			}

			result := c.try(ctx, provider, q)
			if result == nil {
				continue
			}
			if result.TotalResults > 0 {
				IncrementCounter("provider." + provider.Name())
				return result
			}
			emptyResponse = result
		}
	}

	return emptyResponse
}

// try runs one provider call. Failures are logged and swallowed; the cascade
// degrades, it never fails the whole corroboration check.
func (c *Cascade) try(ctx context.Context, provider NewsProvider, query string) *SearchResult {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := provider.Search(callCtx, query)
	if err != nil {
		Logger().Warning("Search provider %s failed: %v", provider.Name(), err)
		IncrementCounter("provider_errors")
		return nil
	}
	return result
}
