// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

func newGroqServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	orig := groqAPIURL
	groqAPIURL = ts.URL
	t.Cleanup(func() { groqAPIURL = orig })
}

func testBackend() *GroqBackend {
	return &GroqBackend{
		Config: types.CompletionConfig{
			Model:      "llama3-70b-8192",
			APIKey:     "test-key",
			MaxRetries: 1,
		},
		Client: http.DefaultClient,
	}
}

func TestGroqComplete(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	newGroqServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "generated text"}}]}`)
	})

	profile := Profile{Description: "You are an editor.", Instructions: []string{"Summarize."}}
	got, err := testBackend().Complete(context.Background(), profile, "article body")
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	if got != "generated text" {
		t.Errorf("Complete() = %q, want %q", got, "generated text")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "llama3-70b-8192" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "article body" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[0].Content, "You are an editor.") {
		t.Errorf("system message = %q", gotReq.Messages[0].Content)
	}
}

func TestGroqCompleteAPIError(t *testing.T) {
	newGroqServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "model not found"}`, http.StatusBadRequest)
	})

	_, err := testBackend().Complete(context.Background(), Profile{}, "input")
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Errorf("Complete() error = %v, want status in message", err)
	}
}

func TestGroqCompleteNoChoices(t *testing.T) {
	newGroqServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	})

	if _, err := testBackend().Complete(context.Background(), Profile{}, "input"); err == nil {
		t.Error("Complete() should fail on empty choices")
	}
}
