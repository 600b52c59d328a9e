// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft assembles collected sources and their summaries into the
// intermediate document the composer writes the final article from, and
// enforces the word budget that bounds it.
package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

// DefaultWordBudget bounds the accumulated summary section and caps each
// individual summary.
const DefaultWordBudget = 5000

// Summarizer reduces one article body to a bounded report. Satisfied by
// writer.Summarizer.
type Summarizer interface {
	Summarize(ctx context.Context, fullText string) (string, error)
}

// SummaryRecord pairs a source with its generated summary. Records are
// produced in source order and consumed once during assembly.
type SummaryRecord struct {
	Source types.SourceRecord
	Text   string
}

// Assembler folds sources and their summaries into a draft document.
type Assembler struct {
	Summarizer Summarizer

	// WordBudget is both the running-total cutoff and the per-summary
	// ceiling (default DefaultWordBudget).
	WordBudget int
	Logger     *slog.Logger
}

// Assemble builds the draft for question from sources, in order. Each source
// contributes a block with its headline, date, URL, search snippet, and
// generated summary; summaries longer than the budget are truncated to it
// first. Iteration stops once the accumulated summary section exceeds the
// budget, so the draft may overshoot by at most one source's contribution —
// the cutoff is checked after appending, never before. The second return
// value is the number of sources actually summarized.
func (a *Assembler) Assemble(ctx context.Context, question string, sources []types.SourceRecord) (string, int, error) {
	budget := a.WordBudget
	if budget <= 0 {
		budget = DefaultWordBudget
	}

	var news strings.Builder
	summarized := 0

	for _, src := range sources {
		summary, err := a.Summarizer.Summarize(ctx, src.FullText)
		if err != nil {
			return "", summarized, fmt.Errorf("summarizing %q: %w", src.Title, err)
		}

		if WordCount(summary) > budget {
			summary = TruncateWords(summary, budget)
			a.logger().Info("truncated summary", "title", src.Title, "words", budget)
		}

		appendBlock(&news, SummaryRecord{Source: src, Text: summary})
		summarized++

		if WordCount(news.String()) > budget {
			a.logger().Info("stopping summarization at budget", "words", WordCount(news.String()), "sources", summarized)
			break
		}
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# Topic: %s\n\n", question)
	if news.Len() > 0 {
		doc.WriteString("## Summary of News Articles\n\n")
		fmt.Fprintf(&doc, "This section provides a summary of the news articles about %s.\n\n", question)
		doc.WriteString("<news_summary>\n\n")
		fmt.Fprintf(&doc, "%s\n\n", news.String())
		doc.WriteString("</news_summary>\n\n")
	}

	return doc.String(), summarized, nil
}

// appendBlock writes one source's section: headline, date, URL, the search
// snippet as an introduction, and the generated summary.
func appendBlock(w *strings.Builder, rec SummaryRecord) {
	fmt.Fprintf(w, "### %s\n\n", rec.Source.Title)
	fmt.Fprintf(w, "- Date: %s\n\n", rec.Source.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "- URL: %s\n\n", rec.Source.URL)
	fmt.Fprintf(w, "#### Introduction\n\n%s\n\n", rec.Source.Snippet)
	fmt.Fprintf(w, "#### Summary\n\n%s\n\n---\n\n", rec.Text)
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
