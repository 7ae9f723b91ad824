package core

import (
	"context"
	"time"
)

// Agent defines the capability contract every agent in AgentForge must satisfy.
//
// Agents are the primary processing units of the framework. They receive a
// task description plus an optional context mapping, transform it into a
// Result built from their static lookup tables, and record the execution in
// their own append-only history.
//
// Implementations must:
//   - Validate input first in Execute and report invalid input via a failed
//     Result rather than panicking
//   - Append an ExecutionRecord to their history for every execution that
//     passes validation
//   - Treat the history as audit/export data only, never as control-flow input
type Agent interface {
	// Name returns the unique instance name assigned at creation.
	Name() string

	// Type returns the agent type identifier (e.g. "coding", "debugging").
	Type() string

	// Execute performs the agent's primary task. The taskCtx mapping carries
	// optional per-call parameters (language, platform, complexity, ...).
	// A nil taskCtx is valid and treated as empty.
	Execute(ctx context.Context, task string, taskCtx map[string]any) *Result

	// Capabilities returns the ordered capability identifiers of this agent.
	Capabilities() []string

	// History returns a copy of the agent's execution history.
	History() []ExecutionRecord

	// Info returns a snapshot of identifying details about this agent.
	Info() AgentInfo
}

// Constructor instantiates an agent with the given instance name and
// configuration. The registry maps type names onto constructors; the factory
// invokes them. A constructor returning an error aborts agent creation.
type Constructor func(name string, config map[string]any) (Agent, error)

// AgentInfo is a point-in-time snapshot of an agent's identity and state,
// suitable for listing and inspection APIs.
type AgentInfo struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	CreatedAt      time.Time      `json:"created_at"`
	Capabilities   []string       `json:"capabilities"`
	Config         map[string]any `json:"config"`
	Metadata       Metadata       `json:"metadata"`
	ExecutionCount int            `json:"execution_count"`
}

// Metadata carries versioning details attached to every agent instance.
type Metadata struct {
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}
