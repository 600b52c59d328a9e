// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// NewsResult is one item returned by the news search backend. Results are
// ranked by the backend; the order they arrive in is the order the pipeline
// consumes them in. URL may be empty for syndicated items that carry no
// canonical link; such results are dropped by the collector.
type NewsResult struct {
	// Title is the headline as returned by the search backend.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical article link, if the backend provided one.
	URL string `json:"url" yaml:"url"`

	// Source names the publisher (e.g. "Reuters").
	Source string `json:"source" yaml:"source"`

	// Snippet is the short search-engine excerpt of the article body.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Date is the publication date.
	Date time.Time `json:"date" yaml:"date"`
}

// SourceRecord is a NewsResult enriched with the extracted article body.
// The collector emits a SourceRecord only when extraction produced text,
// so FullText is always non-empty.
type SourceRecord struct {
	NewsResult `yaml:",inline"`

	// FullText is the extracted article body.
	FullText string `json:"full_text" yaml:"full_text"`
}
