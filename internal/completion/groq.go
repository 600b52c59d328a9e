// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jsenko/newsroom-engine/internal/httputil"
	"github.com/jsenko/newsroom-engine/pkg/types"
)

// groqAPIURL is the Groq chat completions endpoint (OpenAI-compatible).
// Package-level var for test substitution.
var groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqBackend calls the Groq API to generate text for one profile + input.
type GroqBackend struct {
	Config types.CompletionConfig
	Client *http.Client

	// Now supplies the date injected into prompts; tests pin it.
	// Defaults to time.Now.
	Now func() time.Time
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	// MaxTokens caps the completion length; zero omits the field.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// chatMessage is a single message in the chat completion conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends the rendered profile as the system message and input as the
// user message, retrying on rate limits, and returns the generated text.
func (g *GroqBackend) Complete(ctx context.Context, profile Profile, input string) (string, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	reqBody := chatRequest{
		Model:     g.Config.Model,
		MaxTokens: g.Config.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: profile.SystemPrompt(now())},
			{Role: "user", Content: input},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.Config.APIKey)

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, g.Config.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("parsing completion response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return cResp.Choices[0].Message.Content, nil
}
