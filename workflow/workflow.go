// Package workflow provides the definition, fluent construction and
// sequential execution of multi-agent workflows. A workflow is an ordered
// list of steps; each step names an agent role, a task and optional extra
// context. The manager threads a shared context mapping through the steps and
// halts on the first failure.
package workflow

import "github.com/hupe1980/agentforge/core"

// StepKind labels how a step is intended to run. Parallel is accepted and
// recorded but currently executed sequentially like every other step; the
// documented context-merge semantics stay deterministic either way.
type StepKind string

const (
	// KindSequential runs after the previous step completes.
	KindSequential StepKind = "sequential"
	// KindParallel marks a step as independent of its neighbors. The label
	// is preserved in the definition; execution order is unchanged.
	KindParallel StepKind = "parallel"
)

// Step is one workflow entry: the target agent role (resolved against the
// agent map supplied at execution time, not the registry's type names), the
// task string and optional extra context whose keys shadow the shared
// workflow context for this step only.
type Step struct {
	Agent   string         `json:"agent"`
	Task    string         `json:"task"`
	Context map[string]any `json:"context,omitempty"`
	Kind    StepKind       `json:"type"`
}

// Definition is an immutable workflow: a unique name, a description and the
// ordered steps. The step count is fixed at creation; there is no update
// operation.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// clone deep-copies the definition so callers cannot mutate stored state.
func (d Definition) clone() Definition {
	out := Definition{Name: d.Name, Description: d.Description}
	out.Steps = make([]Step, len(d.Steps))
	for i, step := range d.Steps {
		out.Steps[i] = step
		if step.Context != nil {
			ctx := make(map[string]any, len(step.Context))
			for k, v := range step.Context {
				ctx[k] = v
			}
			out.Steps[i].Context = ctx
		}
	}
	return out
}

// StepResult records the outcome of one executed step. Step indices are
// 1-based. Exactly one of Result and Err is meaningful: Err carries the
// message when the step could not be executed at all (missing agent, panic).
type StepResult struct {
	Step    int          `json:"step"`
	Agent   string       `json:"agent"`
	Task    string       `json:"task"`
	Result  *core.Result `json:"result,omitempty"`
	Err     string       `json:"error,omitempty"`
	Success bool         `json:"success"`
}

// Run states reported by RunResult.Status.
const (
	// StatusCompleted marks a run in which every step succeeded.
	StatusCompleted = "completed_success"
	// StatusPartial marks a run halted before all steps completed.
	StatusPartial = "completed_partial"
)

// RunResult is the record of one workflow execution. StepsCompleted counts
// the steps whose agent was actually invoked and is always ≤ TotalSteps. A
// step halted by an agent lookup miss leaves an error StepResult in Steps
// without counting as completed; steps after the first failure were never
// attempted and are absent from Steps entirely.
type RunResult struct {
	Workflow       string         `json:"workflow"`
	RunID          string         `json:"run_id"`
	Success        bool           `json:"success"`
	Status         string         `json:"status"`
	StepsCompleted int            `json:"steps_completed"`
	TotalSteps     int            `json:"total_steps"`
	Steps          []StepResult   `json:"results"`
	FinalContext   map[string]any `json:"final_context"`
}

// ValidationReport is the outcome of checking a workflow against a set of
// available agent roles.
type ValidationReport struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors,omitempty"`
	MissingAgents []string `json:"missing_agents,omitempty"`
}
