// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package completion calls a text-generation API with a fixed instruction
// profile and a user-supplied body of text. Profiles describe the role the
// model plays, the ordered instructions it follows, and the output template
// it fills in; the summarization and composition stages each carry one.
package completion

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Completer abstracts the completion API so tests can supply a mock.
type Completer interface {
	Complete(ctx context.Context, profile Profile, input string) (string, error)
}

// Profile is a fixed instruction set for one generation task.
type Profile struct {
	// Name identifies the task in logs (e.g. "article-summarizer").
	Name string

	// Description states the role the model assumes.
	Description string

	// Instructions are followed in order.
	Instructions []string

	// OutputFormat is an optional template the response must follow,
	// appended verbatim to the system prompt.
	OutputFormat string

	// Markdown requests markdown-formatted output.
	Markdown bool

	// AddDate injects the current date into the instructions, which keeps
	// the model from treating recent coverage as future events.
	AddDate bool
}

// SystemPrompt renders the profile into a single system message.
func (p Profile) SystemPrompt(now time.Time) string {
	var b strings.Builder

	b.WriteString(p.Description)
	b.WriteString("\n")

	if len(p.Instructions) > 0 {
		b.WriteString("\nYou must follow these instructions carefully:\n")
		for i, inst := range p.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, inst)
		}
	}

	if p.AddDate {
		fmt.Fprintf(&b, "\nThe current date is: %s\n", now.Format("2006-01-02"))
	}

	if p.Markdown {
		b.WriteString("\nUse markdown to format your answers.\n")
	}

	if p.OutputFormat != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(p.OutputFormat))
		b.WriteString("\n")
	}

	return b.String()
}
