// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

// DuckDuckGo endpoints. Declared as vars so tests can substitute httptest
// servers.
var (
	ddgHomeURL = "https://duckduckgo.com/"
	ddgNewsURL = "https://duckduckgo.com/news.js"
)

// vqdPattern extracts the session token embedded in the DuckDuckGo homepage
// response. The token must accompany every news.js request.
var vqdPattern = regexp.MustCompile(`vqd=['"]?([\d-]+)['"]?`)

// DDGBackend queries the DuckDuckGo news vertical.
type DDGBackend struct {
	Client *http.Client
	Config types.SearchConfig
}

// Name returns the backend identifier.
func (b *DDGBackend) Name() string { return "duckduckgo" }

// News fetches a session token and queries news.js for up to limit results
// matching query. Results arrive relevance-ranked; their order is preserved.
func (b *DDGBackend) News(ctx context.Context, query string, limit int) ([]types.NewsResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty news query")
	}
	if limit <= 0 {
		limit = b.Config.MaxResults
	}
	if limit <= 0 {
		limit = 5
	}

	vqd, err := b.fetchToken(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching search token: %w", err)
	}

	locale := b.Config.Locale
	if locale == "" {
		locale = "wt-wt"
	}

	params := url.Values{
		"l":     {locale},
		"o":     {"json"},
		"noamp": {"1"},
		"q":     {query},
		"vqd":   {vqd},
		"p":     {"-1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ddgNewsURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", b.Config.UserAgent)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned HTTP %d", resp.StatusCode)
	}

	var nr newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("parsing news response: %w", err)
	}

	var results []types.NewsResult
	for _, item := range nr.Results {
		if len(results) >= limit {
			break
		}
		r := types.NewsResult{
			Title:   item.Title,
			URL:     item.URL,
			Source:  item.Source,
			Snippet: item.Excerpt,
		}
		if item.Date > 0 {
			r.Date = time.Unix(item.Date, 0).UTC()
		}
		results = append(results, r)
	}
	return results, nil
}

// fetchToken loads the homepage for query and scrapes the vqd session token
// out of the returned markup.
func (b *DDGBackend) fetchToken(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ddgHomeURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", b.Config.UserAgent)

	resp, err := b.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	m := vqdPattern.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("no vqd token in response")
	}
	return string(m[1]), nil
}

// DuckDuckGo news.js JSON structures.
type newsResponse struct {
	Results []newsItem `json:"results"`
}

type newsItem struct {
	Date    int64  `json:"date"`
	Excerpt string `json:"excerpt"`
	Source  string `json:"source"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}
