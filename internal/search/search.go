// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries a news search API and returns ranked results.
package search

import (
	"context"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

// Provider searches a news API for recent coverage of a topic. The returned
// slice is ordered by the backend's relevance ranking and holds at most
// limit results.
type Provider interface {
	Name() string
	News(ctx context.Context, query string, limit int) ([]types.NewsResult, error)
}
