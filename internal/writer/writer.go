// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package writer holds the two fixed generation tasks of the pipeline: the
// per-article summarizer and the final article composer. Both delegate to
// the completion backend; neither post-processes the returned text. The
// summarizer's 500-word instruction is advisory — the hard budget is
// enforced downstream by the draft assembler.
package writer

import (
	"context"
	"fmt"

	"github.com/jsenko/newsroom-engine/internal/completion"
)

var summarizerProfile = completion.Profile{
	Name:        "article-summarizer",
	Description: "You are a Senior NYT Editor and your task is to summarize a newspaper article.",
	Instructions: []string{
		"You will be provided with the text from a newspaper article.",
		"Carefully read the article and prepare a thorough report of key facts and details.",
		"Your report should be less than 500 words.",
		"Provide as many details and facts as possible in the summary.",
		"Your report will be used to generate a final New York Times worthy report.",
		"REMEMBER: you are writing for the New York Times, so the quality of the report is important.",
		"Make sure your report is properly formatted and follows the <report_format> provided below.",
	},
	OutputFormat: `<report_format>
**Overview:**

{overview of the article}

**Details:**

{details/facts/main points from the article}

**Key Takeaways:**

{provide key takeaways from the article}
</report_format>`,
	Markdown: true,
	AddDate:  true,
}

var composerProfile = completion.Profile{
	Name:        "article-writer",
	Description: "You are a Senior NYT Editor and your task is to write a NYT cover story worthy article due tomorrow.",
	Instructions: []string{
		"You will be provided with a topic and pre-processed summaries from junior researchers.",
		"Carefully read the provided information and think about the contents.",
		"Then generate a final New York Times worthy article in the <article_format> provided below.",
		"Make your article engaging, informative, and well-structured.",
		"Break the article into sections and provide key takeaways at the end.",
		"Make sure the title is catchy and engaging.",
		"Give the sections relevant titles and provide details/facts/processes in each section.",
		"REMEMBER: you are writing for the New York Times, so the quality of the article is important.",
	},
	OutputFormat: `<article_format>
## Engaging Article Title

### Overview
{give a brief introduction of the article and why the user should read this report}
{make this section engaging and create a hook for the reader}

### Section 1
{break the article into sections}
{provide details/facts/processes in this section}

... more sections as necessary...

### Takeaways
{provide key takeaways from the article}

### References
- [Title](url)
- [Title](url)
- [Title](url)
</article_format>`,
	Markdown: true,
	AddDate:  true,
}

// Summarizer reduces one article body to a structured report.
type Summarizer struct {
	Completer completion.Completer
}

// Summarize generates the Overview/Details/Key Takeaways report for one
// article's full text. The response is returned as-is.
func (s *Summarizer) Summarize(ctx context.Context, fullText string) (string, error) {
	out, err := s.Completer.Complete(ctx, summarizerProfile, fullText)
	if err != nil {
		return "", fmt.Errorf("summarizing article: %w", err)
	}
	return out, nil
}

// Composer turns an assembled draft into the final long-form article.
type Composer struct {
	Completer completion.Completer
}

// Compose generates the final article from the draft document. The response
// is the pipeline result; no truncation or post-processing is applied.
func (c *Composer) Compose(ctx context.Context, draft string) (string, error) {
	out, err := c.Completer.Complete(ctx, composerProfile, draft)
	if err != nil {
		return "", fmt.Errorf("composing article: %w", err)
	}
	return out, nil
}
