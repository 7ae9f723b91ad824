package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/agentforge/core"
)

// ExecuteCall records one StubAgent invocation.
type ExecuteCall struct {
	Task    string
	TaskCtx map[string]any
}

// StubAgent is a scriptable core.Agent for tests. By default every Execute
// succeeds with an empty payload; set Result, ExecuteFn or PanicWith to
// script other behavior.
type StubAgent struct {
	AgentName string
	AgentType string

	// Result is returned by Execute when ExecuteFn is nil.
	Result *core.Result
	// ExecuteFn, when set, fully replaces the default Execute behavior.
	ExecuteFn func(ctx context.Context, task string, taskCtx map[string]any) *core.Result
	// PanicWith, when non-nil, makes Execute panic with this value.
	PanicWith any

	mu    sync.Mutex
	calls []ExecuteCall
}

var _ core.Agent = (*StubAgent)(nil)

// NewStubAgent creates a stub that succeeds on every execution.
func NewStubAgent(name string) *StubAgent {
	return &StubAgent{AgentName: name, AgentType: "stub"}
}

// Name implements core.Agent.
func (s *StubAgent) Name() string { return s.AgentName }

// Type implements core.Agent.
func (s *StubAgent) Type() string { return s.AgentType }

// Execute implements core.Agent, recording the call.
func (s *StubAgent) Execute(ctx context.Context, task string, taskCtx map[string]any) *core.Result {
	s.mu.Lock()
	s.calls = append(s.calls, ExecuteCall{Task: task, TaskCtx: taskCtx})
	s.mu.Unlock()

	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	if s.ExecuteFn != nil {
		return s.ExecuteFn(ctx, task, taskCtx)
	}
	if s.Result != nil {
		return s.Result
	}
	return &core.Result{Success: true, Payload: map[string]any{}}
}

// Capabilities implements core.Agent.
func (s *StubAgent) Capabilities() []string { return []string{"stub"} }

// History implements core.Agent.
func (s *StubAgent) History() []core.ExecutionRecord { return nil }

// Info implements core.Agent.
func (s *StubAgent) Info() core.AgentInfo {
	return core.AgentInfo{Name: s.AgentName, Type: s.AgentType, CreatedAt: time.Now()}
}

// Calls returns a copy of the recorded invocations.
func (s *StubAgent) Calls() []ExecuteCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ExecuteCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of recorded invocations.
func (s *StubAgent) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
