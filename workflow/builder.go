package workflow

// Builder accumulates an ordered list of steps and produces an immutable
// Definition snapshot. All mutating methods return the builder itself for
// chaining. The builder performs no validation beyond structural shape.
//
// Example:
//
//	def := workflow.NewBuilder("review").
//	    Description("Code review and improvement workflow").
//	    AddStep("coder", "Analyze code quality").
//	    AddStep("debugger", "Identify potential issues").
//	    Build()
type Builder struct {
	name        string
	description string
	steps       []Step
}

// NewBuilder creates a builder for a workflow with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Description sets the workflow description.
func (b *Builder) Description(desc string) *Builder {
	b.description = desc
	return b
}

// StepOption customizes a step appended via AddStep.
type StepOption func(*Step)

// WithContext attaches extra context to the step. Its keys shadow the shared
// workflow context for this step only.
func WithContext(ctx map[string]any) StepOption {
	return func(s *Step) { s.Context = ctx }
}

// WithKind sets the step kind label.
func WithKind(kind StepKind) StepOption {
	return func(s *Step) { s.Kind = kind }
}

// AddStep appends a step targeting the given agent role. Steps default to
// KindSequential with no extra context.
func (b *Builder) AddStep(agent, task string, optFns ...StepOption) *Builder {
	step := Step{Agent: agent, Task: task, Kind: KindSequential}
	for _, fn := range optFns {
		fn(&step)
	}
	b.steps = append(b.steps, step)
	return b
}

// AddSequentialStep appends a step that runs after the previous one completes.
func (b *Builder) AddSequentialStep(agent, task string, ctx map[string]any) *Builder {
	return b.AddStep(agent, task, WithContext(ctx), WithKind(KindSequential))
}

// AddParallelStep appends a step labeled parallel. The label is recorded in
// the definition; execution remains sequential.
func (b *Builder) AddParallelStep(agent, task string, ctx map[string]any) *Builder {
	return b.AddStep(agent, task, WithContext(ctx), WithKind(KindParallel))
}

// RemoveLastStep pops the most recently added step, if any.
func (b *Builder) RemoveLastStep() *Builder {
	if len(b.steps) > 0 {
		b.steps = b.steps[:len(b.steps)-1]
	}
	return b
}

// Clear removes all accumulated steps.
func (b *Builder) Clear() *Builder {
	b.steps = nil
	return b
}

// Len returns the number of accumulated steps.
func (b *Builder) Len() int { return len(b.steps) }

// Build produces an immutable Definition snapshot. Further builder mutations
// do not affect previously built definitions.
func (b *Builder) Build() Definition {
	def := Definition{Name: b.name, Description: b.description, Steps: b.steps}
	return def.clone()
}
