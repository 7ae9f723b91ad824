package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/internal/testutil"
)

func TestManager_CreateGetListDelete(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Create(NewBuilder("alpha").AddStep("coder", "t").Build()))
	require.NoError(t, m.Create(NewBuilder("beta").Build()))

	err := m.Create(NewBuilder("alpha").Build())
	assert.ErrorIs(t, err, core.ErrWorkflowExists)

	assert.Equal(t, []string{"alpha", "beta"}, m.List())

	def, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Len(t, def.Steps, 1)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	assert.True(t, m.Delete("beta"))
	assert.False(t, m.Delete("beta"))
	assert.Equal(t, []string{"alpha"}, m.List())
}

func TestManager_StoredDefinitionIsIndependent(t *testing.T) {
	m := NewManager()

	def := NewBuilder("w").AddStep("coder", "t", WithContext(map[string]any{"k": "v"})).Build()
	require.NoError(t, m.Create(def))

	def.Steps[0].Context["k"] = "changed"
	stored, _ := m.Get("w")
	assert.Equal(t, "v", stored.Steps[0].Context["k"])
}

func TestManager_Validate(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("w").
		AddStep("coder", "one").
		AddStep("debugger", "two").
		Build()))

	report := m.Validate("w", []string{"coder", "debugger"})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)

	report = m.Validate("w", []string{"coder"})
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"debugger"}, report.MissingAgents)

	report = m.Validate("missing", nil)
	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors[0], "not found")
}

func TestManager_ExecuteUnknownWorkflow(t *testing.T) {
	m := NewManager()

	_, err := m.Execute(context.Background(), "missing", nil, nil)
	assert.ErrorIs(t, err, core.ErrWorkflowNotFound)
}

func TestManager_ExecuteEmptyWorkflow(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("empty").Build()))

	run, err := m.Execute(context.Background(), "empty", nil, map[string]any{"seed": 1})
	require.NoError(t, err)

	assert.True(t, run.Success)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.Equal(t, 0, run.StepsCompleted)
	assert.Equal(t, 0, run.TotalSteps)
	assert.Empty(t, run.Steps)
	assert.Equal(t, map[string]any{"seed": 1}, run.FinalContext)
	assert.NotEmpty(t, run.RunID)
}

func TestManager_ExecuteThreadsContext(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("w").
		AddStep("first", "produce", WithContext(map[string]any{"local": true})).
		AddStep("second", "consume").
		AddStep("third", "finish").
		Build()))

	first := testutil.NewStubAgent("first")
	first.Result = &core.Result{
		Success:       true,
		OutputContext: map[string]any{"artifact": "v1", "owner": "first"},
	}
	second := testutil.NewStubAgent("second")
	second.Result = &core.Result{
		Success:       true,
		OutputContext: map[string]any{"owner": "second"},
	}
	third := testutil.NewStubAgent("third")

	agents := map[string]core.Agent{"first": first, "second": second, "third": third}
	run, err := m.Execute(context.Background(), "w", agents, map[string]any{"project": "demo"})
	require.NoError(t, err)

	assert.True(t, run.Success)
	assert.Equal(t, 3, run.StepsCompleted)
	require.Len(t, run.Steps, 3)

	// Step context shadows the shared context for that call only.
	firstCall := first.Calls()[0]
	assert.Equal(t, "demo", firstCall.TaskCtx["project"])
	assert.Equal(t, true, firstCall.TaskCtx["local"])

	secondCall := second.Calls()[0]
	assert.Equal(t, "v1", secondCall.TaskCtx["artifact"])
	assert.NotContains(t, secondCall.TaskCtx, "local")

	// Later output keys override earlier ones in the final context.
	assert.Equal(t, "second", run.FinalContext["owner"])
	assert.Equal(t, "v1", run.FinalContext["artifact"])
	assert.Equal(t, "demo", run.FinalContext["project"])
}

func TestManager_ExecuteMissingAgentHalts(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("w").
		AddStep("first", "one").
		AddStep("ghost", "two").
		AddStep("third", "three").
		Build()))

	first := testutil.NewStubAgent("first")
	third := testutil.NewStubAgent("third")
	agents := map[string]core.Agent{"first": first, "third": third}

	run, err := m.Execute(context.Background(), "w", agents, nil)
	require.NoError(t, err)

	assert.False(t, run.Success)
	assert.Equal(t, StatusPartial, run.Status)
	assert.Equal(t, 1, run.StepsCompleted)
	assert.Equal(t, 3, run.TotalSteps)

	require.Len(t, run.Steps, 2)
	assert.True(t, run.Steps[0].Success)
	assert.Equal(t, 2, run.Steps[1].Step)
	assert.Equal(t, `agent "ghost" not found for step 2`, run.Steps[1].Err)
	assert.False(t, run.Steps[1].Success)

	// The step after the miss was never attempted.
	assert.Zero(t, third.CallCount())
}

func TestManager_ExecuteHaltsOnFailedResult(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("w").
		AddStep("first", "one").
		AddStep("second", "two").
		Build()))

	first := testutil.NewStubAgent("first")
	first.Result = &core.Result{Success: false, Error: "canned failure"}
	second := testutil.NewStubAgent("second")

	run, err := m.Execute(context.Background(), "w", map[string]core.Agent{"first": first, "second": second}, nil)
	require.NoError(t, err)

	assert.False(t, run.Success)
	assert.Equal(t, 1, run.StepsCompleted)
	require.Len(t, run.Steps, 1)
	assert.Equal(t, "canned failure", run.Steps[0].Result.Error)
	assert.Zero(t, second.CallCount())
}

func TestManager_ExecuteRecoversPanic(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("w").
		AddStep("boom", "one").
		AddStep("second", "two").
		Build()))

	boom := testutil.NewStubAgent("boom")
	boom.PanicWith = "kaboom"
	second := testutil.NewStubAgent("second")

	run, err := m.Execute(context.Background(), "w", map[string]core.Agent{"boom": boom, "second": second}, nil)
	require.NoError(t, err)

	assert.False(t, run.Success)
	assert.Equal(t, 1, run.StepsCompleted)
	require.Len(t, run.Steps, 1)
	assert.Equal(t, "agent panicked: kaboom", run.Steps[0].Err)
	assert.Zero(t, second.CallCount())
}

func TestManager_HistoryRecordsEveryRun(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(NewBuilder("w").AddStep("ghost", "one").Build()))
	require.NoError(t, m.Create(NewBuilder("empty").Build()))

	_, err := m.Execute(context.Background(), "w", nil, nil)
	require.NoError(t, err)
	_, err = m.Execute(context.Background(), "empty", nil, nil)
	require.NoError(t, err)

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, "w", history[0].Workflow)
	assert.False(t, history[0].Success)
	assert.Equal(t, "empty", history[1].Workflow)
	assert.True(t, history[1].Success)
	assert.NotEqual(t, history[0].RunID, history[1].RunID)
}
