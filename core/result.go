package core

import (
	"time"

	"github.com/google/uuid"
)

// Result is the envelope every agent execution returns. Success reports the
// agent's own verdict; Payload carries the agent-specific output tables and
// OutputContext carries key/value pairs a workflow merges into the shared
// context for subsequent steps.
type Result struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
	OutputContext map[string]any `json:"output_context,omitempty"`
}

// Failure builds a failed Result carrying the given error message.
func Failure(msg string) *Result {
	return &Result{Success: false, Error: msg}
}

// ExecutionRecord is one entry of an agent's append-only execution history.
// Records are written on every execution that passes input validation and are
// used for audit and export only.
type ExecutionRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	AgentType string    `json:"agent_type"`
	Task      string    `json:"task"`
	Result    *Result   `json:"result"`
}

// NewID returns a new unique identifier for execution records and workflow runs.
func NewID() string { return uuid.NewString() }
