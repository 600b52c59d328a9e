package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "newsroom-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the news search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of news results to collect (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Locale is the DuckDuckGo region code (default "wt-wt", worldwide).
	Locale string `json:"locale" yaml:"locale"`
}

// ExtractConfig holds settings for the article-text extraction stage.
type ExtractConfig struct {
	HTTPConfig `yaml:",inline"`

	// MinTextLength is the minimum number of bytes of extracted text for an
	// article body to count as usable (default 200).
	MinTextLength int `json:"min_text_length" yaml:"min_text_length"`
}

// CompletionConfig holds settings for stages that call the completion API.
type CompletionConfig struct {
	// Model is the completion model identifier (e.g. "llama3-70b-8192").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxTokens caps the length of a single completion (default 8192).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// StoreConfig holds settings for the status store.
type StoreConfig struct {
	// Path is the SQLite database file (default "newsroom.db").
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Search     SearchConfig     `json:"search" yaml:"search"`
	Extract    ExtractConfig    `json:"extract" yaml:"extract"`
	Completion CompletionConfig `json:"completion" yaml:"completion"`
	Store      StoreConfig      `json:"store" yaml:"store"`

	// WordBudget is the maximum accumulated draft length in words before the
	// summarization loop stops, and the per-summary truncation ceiling
	// (default 5000).
	WordBudget int `json:"word_budget" yaml:"word_budget"`
}
