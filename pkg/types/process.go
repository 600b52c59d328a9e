// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the newsroom-engine
// pipeline: the durable process record, the news records that flow between
// stages, and per-stage configuration.
package types

import "time"

// ProcessStatus is the lifecycle state of a pipeline invocation.
type ProcessStatus string

const (
	StatusPending    ProcessStatus = "PENDING"
	StatusProcessing ProcessStatus = "PROCESSING"
	StatusCompleted  ProcessStatus = "COMPLETED"
	StatusFailed     ProcessStatus = "FAILED"
)

// ProcessRecord tracks one pipeline invocation in the status store. Result
// is set only on COMPLETED, Error only on FAILED. The record is created by
// the submitter in PENDING state and mutated only by the lifecycle manager.
type ProcessRecord struct {
	// ProcessID is the caller-supplied unique identifier.
	ProcessID string `json:"processId" yaml:"process_id"`

	// Question is the topic the article is written about.
	Question string `json:"question" yaml:"question"`

	// Status is the current lifecycle state.
	Status ProcessStatus `json:"status" yaml:"status"`

	// Result holds the composed article text once the process completes.
	Result string `json:"result,omitempty" yaml:"result,omitempty"`

	// Error holds the failure description once the process fails.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// UpdatedAt is the time of the most recent status-store write.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}

// Terminal reports whether the record reached a final state.
func (r ProcessRecord) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
