// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one news-article generation process end to end:
// claim the process record, collect sources, assemble the summarized draft,
// compose the final article, and commit the terminal status. Each invocation
// performs exactly two status-store writes — the PROCESSING claim on entry
// and a single terminal COMPLETED or FAILED write — so external pollers
// always observe a consistent record.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsenko/newsroom-engine/internal/process"
	"github.com/jsenko/newsroom-engine/pkg/types"
)

// Request is the invocation input.
type Request struct {
	ProcessID string `json:"processId" yaml:"process_id"`
	Question  string `json:"question" yaml:"question"`
}

// Response is the invocation output. Body is an encoded JSON document:
// {processId, message, result} on success, {error} on failure. The detailed
// failure reason is persisted to the status store, not returned.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type successBody struct {
	ProcessID string `json:"processId"`
	Message   string `json:"message"`
	Result    string `json:"result"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Collector gathers enriched source records for a question.
type Collector interface {
	Collect(ctx context.Context, question string) ([]types.SourceRecord, error)
}

// Assembler folds sources into a draft document, returning the draft and the
// number of sources summarized.
type Assembler interface {
	Assemble(ctx context.Context, question string, sources []types.SourceRecord) (string, int, error)
}

// Composer writes the final article from a draft document.
type Composer interface {
	Compose(ctx context.Context, draft string) (string, error)
}

// StatusStore commits lifecycle transitions. Satisfied by process.Store.
type StatusStore interface {
	Transition(ctx context.Context, id string, from types.ProcessStatus, f process.Fields) error
}

// Manager owns the process state machine and drives the stages in sequence.
// All collaborators are injected so tests can substitute doubles.
type Manager struct {
	Store     StatusStore
	Collector Collector
	Assembler Assembler
	Composer  Composer
	Logger    *slog.Logger
}

// Run executes the pipeline for req. Stage failures are captured in a
// terminal FAILED write and reported as a 500 response; they are never
// returned as errors. The returned error is non-nil only when a status-store
// write itself fails, which leaves the invocation without a consistent
// record and must propagate to the transport.
func (m *Manager) Run(ctx context.Context, req Request) (Response, error) {
	log := m.logger().With("processId", req.ProcessID)

	// Claim the record. A record that is not PENDING belongs to another
	// in-flight or finished invocation; do not touch it.
	err := m.Store.Transition(ctx, req.ProcessID, types.StatusPending, process.Fields{Status: types.StatusProcessing})
	if errors.Is(err, process.ErrConflict) {
		log.Warn("process already claimed or finished")
		return errorResponse(http.StatusConflict, "process is already being handled"), nil
	}
	if err != nil {
		return Response{}, fmt.Errorf("claiming process: %w", err)
	}

	result, stageErr := m.generate(ctx, log, req.Question)
	if stageErr != nil {
		log.Error("pipeline stage failed", "err", stageErr)
		msg := stageErr.Error()
		err := m.Store.Transition(ctx, req.ProcessID, types.StatusProcessing,
			process.Fields{Status: types.StatusFailed, Error: &msg})
		if err != nil {
			return Response{}, fmt.Errorf("recording failure: %w", err)
		}
		return errorResponse(http.StatusInternalServerError, "An error occurred during processing"), nil
	}

	err = m.Store.Transition(ctx, req.ProcessID, types.StatusProcessing,
		process.Fields{Status: types.StatusCompleted, Result: &result})
	if err != nil {
		return Response{}, fmt.Errorf("recording result: %w", err)
	}

	log.Info("process completed", "resultBytes", len(result))
	return successResponse(req.ProcessID, result), nil
}

// generate runs the three content stages: collect, assemble, compose. A
// question that yields no sources still produces an article — the composer
// receives a draft holding only the topic header.
func (m *Manager) generate(ctx context.Context, log *slog.Logger, question string) (string, error) {
	sources, err := m.Collector.Collect(ctx, question)
	if err != nil {
		return "", fmt.Errorf("collecting sources: %w", err)
	}

	doc, summarized, err := m.Assembler.Assemble(ctx, question, sources)
	if err != nil {
		return "", fmt.Errorf("assembling draft: %w", err)
	}
	log.Info("draft assembled", "sources", len(sources), "summarized", summarized)

	article, err := m.Composer.Compose(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("composing article: %w", err)
	}
	return article, nil
}

func (m *Manager) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func successResponse(processID, result string) Response {
	body, _ := json.Marshal(successBody{
		ProcessID: processID,
		Message:   "Process completed successfully",
		Result:    result,
	})
	return Response{StatusCode: http.StatusOK, ContentType: "application/json", Body: body}
}

func errorResponse(code int, msg string) Response {
	body, _ := json.Marshal(errorBody{Error: msg})
	return Response{StatusCode: code, ContentType: "application/json", Body: body}
}
