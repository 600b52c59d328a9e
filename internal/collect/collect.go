// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect gathers news sources for a topic question: it runs the
// search backend, extracts the full article body for each ranked result,
// and keeps only the results that produced usable text.
package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsenko/newsroom-engine/internal/extract"
	"github.com/jsenko/newsroom-engine/internal/search"
	"github.com/jsenko/newsroom-engine/pkg/types"
)

// Collector produces the ordered source records the pipeline summarizes.
type Collector struct {
	Search  search.Provider
	Extract extract.Extractor

	// Limit caps the number of search results requested (default 5).
	Limit  int
	Logger *slog.Logger
}

// Collect queries the search backend for question and enriches each result
// with its extracted article body. Results without a URL, and results whose
// extraction failed or came back empty, are dropped without escalating.
// Ranking order is preserved; the output holds between 0 and Limit records.
func (c *Collector) Collect(ctx context.Context, question string) ([]types.SourceRecord, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = 5
	}

	results, err := c.Search.News(ctx, question, limit)
	if err != nil {
		return nil, fmt.Errorf("searching news for %q: %w", question, err)
	}

	var sources []types.SourceRecord
	for _, r := range results {
		if r.URL == "" {
			c.logger().Debug("skipping result without URL", "title", r.Title)
			continue
		}

		text, err := c.Extract.ArticleText(ctx, r.URL)
		if err != nil || text == "" {
			c.logger().Debug("skipping result without usable text", "url", r.URL, "err", err)
			continue
		}

		sources = append(sources, types.SourceRecord{NewsResult: r, FullText: text})
	}

	c.logger().Info("collected news sources", "question", question, "found", len(sources), "searched", len(results))
	return sources, nil
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
