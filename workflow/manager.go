package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/logging"
)

// Options holds configuration overrides passed to NewManager().
type Options struct {
	// Logger receives structured run and step logs.
	Logger logging.Logger
}

// Manager owns named workflow definitions and an execution history, and runs
// workflows against a caller-supplied set of agent instances. Public methods
// are safe for concurrent use; a single run executes synchronously on the
// calling goroutine.
type Manager struct {
	logger logging.Logger

	mu        sync.RWMutex
	workflows map[string]Definition
	order     []string
	history   []RunResult
}

// NewManager constructs an empty Manager with optional overrides.
func NewManager(optFns ...func(o *Options)) *Manager {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Manager{
		logger:    opts.Logger,
		workflows: make(map[string]Definition),
	}
}

// Create stores a workflow definition under its name. It returns
// core.ErrWorkflowExists when the name is already taken. The stored
// definition is a deep copy; the caller's value stays independent.
func (m *Manager) Create(def Definition) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.workflows[def.Name]; exists {
		return fmt.Errorf("%w: %q", core.ErrWorkflowExists, def.Name)
	}

	m.workflows[def.Name] = def.clone()
	m.order = append(m.order, def.Name)
	m.logger.Info("workflow created", "name", def.Name, "steps", len(def.Steps))

	return nil
}

// Get returns a copy of the named workflow definition, if present.
func (m *Manager) Get(name string) (Definition, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	def, ok := m.workflows[name]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// List returns all workflow names in creation order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Delete removes the named workflow, reporting prior presence.
func (m *Manager) Delete(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.workflows[name]; !exists {
		return false
	}

	delete(m.workflows, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return true
}

// Validate checks whether the named workflow can run with the given agent
// roles available.
func (m *Manager) Validate(name string, availableAgents []string) ValidationReport {
	def, ok := m.Get(name)
	if !ok {
		return ValidationReport{
			Valid:  false,
			Errors: []string{fmt.Sprintf("workflow %q not found", name)},
		}
	}

	available := make(map[string]bool, len(availableAgents))
	for _, agent := range availableAgents {
		available[agent] = true
	}

	missing := []string{}
	for _, step := range def.Steps {
		if !available[step.Agent] {
			missing = append(missing, step.Agent)
		}
	}

	if len(missing) > 0 {
		return ValidationReport{
			Valid:         false,
			Errors:        []string{"missing required agents"},
			MissingAgents: missing,
		}
	}

	return ValidationReport{Valid: true}
}

// Execute runs the named workflow against the supplied agent map. Step agent
// roles are resolved against that map, not the registry. The shared context
// starts as a copy of initial; each step sees it merged with its own context
// (step keys shadow for that call only) and successful steps merge their
// result's OutputContext back in. Execution halts at the first step whose
// agent is missing, whose invocation panics, or whose result reports failure
// — neither is retried. The run record is appended to history regardless of
// outcome.
//
// It returns core.ErrWorkflowNotFound for unknown names; step-level failures
// are reported inside the RunResult, not as an error.
func (m *Manager) Execute(ctx context.Context, name string, agents map[string]core.Agent, initial map[string]any) (*RunResult, error) {
	def, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrWorkflowNotFound, name)
	}

	runID := core.NewID()
	start := time.Now()
	m.logger.Info("workflow started", "name", name, "run_id", runID, "total_steps", len(def.Steps))

	shared := make(map[string]any, len(initial))
	for k, v := range initial {
		shared[k] = v
	}

	steps := []StepResult{}
	completed := 0
	for i, step := range def.Steps {
		agent, ok := agents[step.Agent]
		if !ok {
			sr := StepResult{
				Step:    i + 1,
				Agent:   step.Agent,
				Task:    step.Task,
				Err:     fmt.Sprintf("agent %q not found for step %d", step.Agent, i+1),
				Success: false,
			}
			steps = append(steps, sr)
			m.logger.Error("workflow step failed", "name", name, "step", i+1, "error", sr.Err)
			break
		}

		merged := make(map[string]any, len(shared)+len(step.Context))
		for k, v := range shared {
			merged[k] = v
		}
		for k, v := range step.Context {
			merged[k] = v
		}

		result, panicErr := m.executeStep(ctx, agent, step.Task, merged)
		completed++
		if panicErr != nil {
			steps = append(steps, StepResult{
				Step:    i + 1,
				Agent:   step.Agent,
				Task:    step.Task,
				Err:     panicErr.Error(),
				Success: false,
			})
			m.logger.Error("workflow step failed", "name", name, "step", i+1, "error", panicErr.Error())
			break
		}

		steps = append(steps, StepResult{
			Step:    i + 1,
			Agent:   step.Agent,
			Task:    step.Task,
			Result:  result,
			Success: result.Success,
		})
		m.logger.Debug("workflow step completed", "name", name, "step", i+1, "success", result.Success)

		if !result.Success {
			break
		}
		for k, v := range result.OutputContext {
			shared[k] = v
		}
	}

	success := true
	for _, sr := range steps {
		if !sr.Success {
			success = false
			break
		}
	}

	status := StatusCompleted
	if !success {
		status = StatusPartial
	}

	run := RunResult{
		Workflow:       name,
		RunID:          runID,
		Success:        success,
		Status:         status,
		StepsCompleted: completed,
		TotalSteps:     len(def.Steps),
		Steps:          steps,
		FinalContext:   shared,
	}

	m.mu.Lock()
	m.history = append(m.history, run)
	m.mu.Unlock()

	m.logger.Info("workflow finished", "name", name, "run_id", runID,
		"success", success, "steps_completed", run.StepsCompleted,
		"duration", time.Since(start))

	return &run, nil
}

// executeStep invokes the agent, converting a panic into an error so one
// misbehaving agent terminates only its workflow run, not the process.
func (m *Manager) executeStep(ctx context.Context, agent core.Agent, task string, taskCtx map[string]any) (result *core.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("agent panicked: %v", r)
		}
	}()

	return agent.Execute(ctx, task, taskCtx), nil
}

// History returns a copy of all recorded workflow runs. The history is never
// pruned.
func (m *Manager) History() []RunResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RunResult, len(m.history))
	copy(out, m.history)
	return out
}
