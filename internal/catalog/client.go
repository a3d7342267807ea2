// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package catalog provides the read-only client for the remote recipe
// catalog (a TheMealDB-compatible JSON API).
//
// Resilience:
//   - Client-side rate limiting (golang.org/x/time/rate) keeps the free
//     public API within its courtesy limits.
//   - A circuit breaker (sony/gobreaker) opens after consecutive failures so
//     a dead catalog degrades the UI instead of hanging it.
//   - Error response bodies are read with a size cap.
//
// All methods accept a context for cancellation. The client also implements
// badges.AreaResolver with an in-memory id-to-area cache, since the
// globetrotter rule re-resolves the same liked ids on every evaluation.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/anand880441-source/meal-explorer/internal/metrics"
)

// maxErrorBodySize caps how much of an error response body is read for
// diagnostics.
const maxErrorBodySize = 64 * 1024

// DefaultBaseURL is the public TheMealDB v1 endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Client is the read-only recipe catalog interface. HTTPClient implements
// it for production; tests substitute fakes.
type Client interface {
	Search(ctx context.Context, query string) ([]Recipe, error)
	Lookup(ctx context.Context, id string) (*Recipe, error)
	Random(ctx context.Context) (*Recipe, error)
	Categories(ctx context.Context) ([]Category, error)
	FilterByCategory(ctx context.Context, category string) ([]Recipe, error)
}

// Config holds catalog client configuration.
type Config struct {
	// BaseURL is the catalog API root. Default: DefaultBaseURL
	BaseURL string

	// Timeout bounds each HTTP request. Default: 10s
	Timeout time.Duration

	// RequestsPerSecond is the client-side rate limit. Default: 4
	RequestsPerSecond float64

	// Burst is the rate limiter burst size. Default: 4
	Burst int
}

// HTTPClient is the production catalog client.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]

	// areaMu guards areaCache, the id-to-cuisine memo for AreaResolver.
	areaMu    sync.Mutex
	areaCache map[string]string
}

// New creates a catalog client from cfg, applying defaults for zero values.
func New(cfg Config) *HTTPClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 4
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 4
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "recipe-catalog",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &HTTPClient{
		baseURL:   cfg.BaseURL,
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:   breaker,
		areaCache: make(map[string]string),
	}
}

// Search returns recipes whose title matches query. An empty result is a
// nil slice, not an error.
func (c *HTTPClient) Search(ctx context.Context, query string) ([]Recipe, error) {
	return c.fetchRecipes(ctx, "search.php", url.Values{"s": {query}})
}

// Lookup returns the full recipe record for id, or nil when the catalog has
// no such recipe.
func (c *HTTPClient) Lookup(ctx context.Context, id string) (*Recipe, error) {
	recipes, err := c.fetchRecipes(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, nil
	}
	return &recipes[0], nil
}

// Random returns one random recipe.
func (c *HTTPClient) Random(ctx context.Context) (*Recipe, error) {
	recipes, err := c.fetchRecipes(ctx, "random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("catalog returned no random recipe")
	}
	return &recipes[0], nil
}

// Categories returns the catalog's category listing.
func (c *HTTPClient) Categories(ctx context.Context) ([]Category, error) {
	raw, err := c.get(ctx, "categories.php", nil)
	if err != nil {
		return nil, err
	}

	var envelope categoriesEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}

	categories := make([]Category, 0, len(envelope.Categories))
	for _, m := range envelope.Categories {
		categories = append(categories, parseCategory(m))
	}
	return categories, nil
}

// FilterByCategory returns summary records (id, title, thumbnail) for every
// recipe in category.
func (c *HTTPClient) FilterByCategory(ctx context.Context, category string) ([]Recipe, error) {
	return c.fetchRecipes(ctx, "filter.php", url.Values{"c": {category}})
}

// RecipeAreas implements badges.AreaResolver: it maps each id to its
// cuisine/area tag, consulting the in-memory cache before the catalog. Ids
// unknown to the catalog are omitted from the result.
func (c *HTTPClient) RecipeAreas(ctx context.Context, ids []string) (map[string]string, error) {
	areas := make(map[string]string, len(ids))
	var misses []string

	c.areaMu.Lock()
	for _, id := range ids {
		if area, ok := c.areaCache[id]; ok {
			areas[id] = area
		} else {
			misses = append(misses, id)
		}
	}
	c.areaMu.Unlock()

	for _, id := range misses {
		recipe, err := c.Lookup(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve area for %s: %w", id, err)
		}
		if recipe == nil {
			continue
		}
		areas[id] = recipe.Area
		c.areaMu.Lock()
		c.areaCache[id] = recipe.Area
		c.areaMu.Unlock()
	}
	return areas, nil
}

// fetchRecipes executes a recipe-list endpoint and parses the meals
// envelope. A null meals array decodes to no recipes.
func (c *HTTPClient) fetchRecipes(ctx context.Context, endpoint string, params url.Values) ([]Recipe, error) {
	raw, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var envelope mealsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	recipes := make([]Recipe, 0, len(envelope.Meals))
	for _, m := range envelope.Meals {
		recipes = append(recipes, parseRecipe(m))
	}
	return recipes, nil
}

// get executes a rate-limited, breaker-protected GET and returns the
// response body.
func (c *HTTPClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	start := time.Now()
	status := "ok"
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.executeRequest(ctx, reqURL)
	})
	if err != nil {
		status = "error"
	}
	metrics.ObserveCatalogRequest(endpoint, status, time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", endpoint, err)
	}
	return raw, nil
}

// executeRequest performs one HTTP GET and reads the full body.
func (c *HTTPClient) executeRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// readBodyForError reads a capped amount of an error response body for
// diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		body = append(body, []byte("... (truncated)")...)
	}
	return body
}
