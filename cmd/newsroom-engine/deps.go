package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/jsenko/newsroom-engine/internal/collect"
	"github.com/jsenko/newsroom-engine/internal/completion"
	"github.com/jsenko/newsroom-engine/internal/draft"
	"github.com/jsenko/newsroom-engine/internal/extract"
	"github.com/jsenko/newsroom-engine/internal/logging"
	"github.com/jsenko/newsroom-engine/internal/pipeline"
	"github.com/jsenko/newsroom-engine/internal/process"
	"github.com/jsenko/newsroom-engine/internal/search"
	"github.com/jsenko/newsroom-engine/internal/writer"
	"github.com/jsenko/newsroom-engine/pkg/types"
)

func init() {
	viper.SetDefault("store.path", "newsroom.db")
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.locale", "wt-wt")
	viper.SetDefault("search.timeout", 20*time.Second)
	viper.SetDefault("extract.timeout", 20*time.Second)
	viper.SetDefault("extract.min_text_length", 200)
	viper.SetDefault("completion.model", "llama3-70b-8192")
	viper.SetDefault("completion.max_retries", 3)
	viper.SetDefault("completion.max_tokens", 8192)
	viper.SetDefault("pipeline.word_budget", draft.DefaultWordBudget)
	viper.SetDefault("http.user_agent", "newsroom-engine/"+version)
}

// buildConfig assembles the pipeline configuration from viper (config file,
// env) and the secrets directory.
func buildConfig() types.PipelineConfig {
	ua := viper.GetString("http.user_agent")
	return types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{Timeout: viper.GetDuration("search.timeout"), UserAgent: ua},
			MaxResults: viper.GetInt("search.max_results"),
			Locale:     viper.GetString("search.locale"),
		},
		Extract: types.ExtractConfig{
			HTTPConfig:    types.HTTPConfig{Timeout: viper.GetDuration("extract.timeout"), UserAgent: ua},
			MinTextLength: viper.GetInt("extract.min_text_length"),
		},
		Completion: types.CompletionConfig{
			Model:      viper.GetString("completion.model"),
			APIKey:     loadedSecrets.Get("groq-api-key", viper.GetString("completion.api_key")),
			MaxRetries: viper.GetInt("completion.max_retries"),
			MaxTokens:  viper.GetInt("completion.max_tokens"),
		},
		Store:      types.StoreConfig{Path: viper.GetString("store.path")},
		WordBudget: viper.GetInt("pipeline.word_budget"),
	}
}

func buildLogger() *slog.Logger {
	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	return logging.New(level)
}

// buildManager wires the real collaborators into a lifecycle manager backed
// by store.
func buildManager(cfg types.PipelineConfig, store *process.Store, log *slog.Logger) *pipeline.Manager {
	completer := &completion.GroqBackend{
		Config: cfg.Completion,
		Client: http.DefaultClient,
	}

	return &pipeline.Manager{
		Store: store,
		Collector: &collect.Collector{
			Search:  &search.DDGBackend{Client: &http.Client{Timeout: cfg.Search.Timeout}, Config: cfg.Search},
			Extract: &extract.PageExtractor{Client: &http.Client{Timeout: cfg.Extract.Timeout}, Config: cfg.Extract},
			Limit:   cfg.Search.MaxResults,
			Logger:  log,
		},
		Assembler: &draft.Assembler{
			Summarizer: &writer.Summarizer{Completer: completer},
			WordBudget: cfg.WordBudget,
			Logger:     log,
		},
		Composer: &writer.Composer{Completer: completer},
		Logger:   log,
	}
}
