package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults: 5,
		Locale:     "wt-wt",
	}
}

// newDDGServers stands up fake homepage and news.js endpoints and rewires
// the package endpoint vars at them for the duration of the test.
func newDDGServers(t *testing.T, homeBody string, newsHandler http.HandlerFunc) {
	t.Helper()

	home := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, homeBody)
	}))
	news := httptest.NewServer(newsHandler)
	t.Cleanup(home.Close)
	t.Cleanup(news.Close)

	origHome, origNews := ddgHomeURL, ddgNewsURL
	ddgHomeURL = home.URL + "/"
	ddgNewsURL = news.URL + "/news.js"
	t.Cleanup(func() {
		ddgHomeURL = origHome
		ddgNewsURL = origNews
	})
}

func TestDDGNews(t *testing.T) {
	var gotVqd, gotQuery string
	newDDGServers(t,
		`<script>var x = navigator; vqd="4-12345678901234567890";</script>`,
		func(w http.ResponseWriter, r *http.Request) {
			gotVqd = r.URL.Query().Get("vqd")
			gotQuery = r.URL.Query().Get("q")
			fmt.Fprint(w, `{"results": [
				{"date": 1710000000, "excerpt": "First snippet", "source": "Reuters", "title": "First", "url": "https://example.com/1"},
				{"date": 1710003600, "excerpt": "Second snippet", "source": "AP", "title": "Second", "url": "https://example.com/2"},
				{"date": 0, "excerpt": "No link", "source": "Wire", "title": "Third", "url": ""}
			]}`)
		})

	b := &DDGBackend{Client: http.DefaultClient, Config: testSearchCfg()}
	results, err := b.News(context.Background(), "example topic", 5)
	if err != nil {
		t.Fatalf("News() error: %v", err)
	}

	if gotVqd != "4-12345678901234567890" {
		t.Errorf("vqd = %q, want scraped token", gotVqd)
	}
	if gotQuery != "example topic" {
		t.Errorf("q = %q, want %q", gotQuery, "example topic")
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if results[0].Title != "First" || results[1].Title != "Second" {
		t.Errorf("result order not preserved: %q, %q", results[0].Title, results[1].Title)
	}
	if results[0].Snippet != "First snippet" {
		t.Errorf("Snippet = %q", results[0].Snippet)
	}
	if results[0].Date != time.Unix(1710000000, 0).UTC() {
		t.Errorf("Date = %v", results[0].Date)
	}
	// URL-less results are kept here; the collector is responsible for
	// dropping them.
	if results[2].URL != "" {
		t.Errorf("URL = %q, want empty", results[2].URL)
	}
}

func TestDDGNewsLimit(t *testing.T) {
	newDDGServers(t, `vqd='4-111'`, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"title": "a", "url": "u1"}, {"title": "b", "url": "u2"},
			{"title": "c", "url": "u3"}, {"title": "d", "url": "u4"}
		]}`)
	})

	b := &DDGBackend{Client: http.DefaultClient, Config: testSearchCfg()}
	results, err := b.News(context.Background(), "topic", 2)
	if err != nil {
		t.Fatalf("News() error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestDDGNewsEmptyQuery(t *testing.T) {
	b := &DDGBackend{Client: http.DefaultClient, Config: testSearchCfg()}
	if _, err := b.News(context.Background(), "", 5); err == nil {
		t.Error("News(\"\") should fail")
	}
}

func TestDDGNewsMissingToken(t *testing.T) {
	newDDGServers(t, `<html>no token here</html>`, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	})

	b := &DDGBackend{Client: http.DefaultClient, Config: testSearchCfg()}
	if _, err := b.News(context.Background(), "topic", 5); err == nil {
		t.Error("News() should fail when no vqd token is present")
	}
}

func TestDDGNewsHTTPError(t *testing.T) {
	newDDGServers(t, `vqd='4-111'`, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	b := &DDGBackend{Client: http.DefaultClient, Config: testSearchCfg()}
	if _, err := b.News(context.Background(), "topic", 5); err == nil {
		t.Error("News() should surface HTTP errors")
	}
}
