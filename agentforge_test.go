package agentforge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentforge/agent"
	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/workflow"
)

func TestNew_RegistersBuiltinTypes(t *testing.T) {
	forge := New()

	assert.Equal(t, []string{
		agent.TypeCoding,
		agent.TypeDebugging,
		agent.TypePlanning,
		agent.TypeBuilding,
	}, forge.Registry().Types())
}

func TestForge_CreateAndExecute(t *testing.T) {
	forge := New()

	coder, err := forge.CreateAgent(agent.TypeCoding, "coder", nil)
	require.NoError(t, err)
	assert.Equal(t, "coder", coder.Name())

	got, ok := forge.GetAgent("coder")
	require.True(t, ok)
	assert.Same(t, coder, got)

	result, err := forge.ExecuteTask(context.Background(), "coder", "write a CLI", nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Python", result.Payload["language"])

	_, err = forge.ExecuteTask(context.Background(), "ghost", "anything", nil)
	assert.ErrorIs(t, err, core.ErrAgentNotFound)

	assert.True(t, forge.RemoveAgent("coder"))
	_, ok = forge.GetAgent("coder")
	assert.False(t, ok)
}

func TestForge_MaxAgentsOption(t *testing.T) {
	forge := New(func(o *Options) {
		o.MaxAgents = 1
	})

	_, err := forge.CreateAgent(agent.TypeCoding, "one", nil)
	require.NoError(t, err)

	_, err = forge.CreateAgent(agent.TypeCoding, "two", nil)
	assert.ErrorIs(t, err, core.ErrAgentLimit)
}

func TestForge_RegisterCustomType(t *testing.T) {
	forge := New()

	err := forge.RegisterType("custom", func(name string, cfg map[string]any) (core.Agent, error) {
		return agent.NewCodingAgent(name, cfg), nil
	})
	require.NoError(t, err)

	a, err := forge.CreateAgent("custom", "mine", nil)
	require.NoError(t, err)
	assert.Equal(t, "mine", a.Name())

	err = forge.RegisterType(agent.TypeCoding, func(name string, cfg map[string]any) (core.Agent, error) {
		return agent.NewCodingAgent(name, cfg), nil
	})
	assert.ErrorIs(t, err, core.ErrDuplicateType)
}

func TestForge_RunWorkflowEndToEnd(t *testing.T) {
	forge := New()

	_, err := forge.CreateAgent(agent.TypePlanning, "planner-1", nil)
	require.NoError(t, err)
	_, err = forge.CreateAgent(agent.TypeCoding, "coder-1", nil)
	require.NoError(t, err)
	_, err = forge.CreateAgent(agent.TypeBuilding, "builder-1", nil)
	require.NoError(t, err)

	def := workflow.NewBuilder("ship").
		Description("Plan, implement and package").
		AddStep("planner", "Plan the feature", workflow.WithContext(map[string]any{"complexity": "low"})).
		AddStep("coder", "Implement the feature").
		AddStep("builder", "Set up the build").
		Build()
	require.NoError(t, forge.CreateWorkflow(def))

	roles := map[string]string{
		"planner": "planner-1",
		"coder":   "coder-1",
		"builder": "builder-1",
	}
	run, err := forge.RunWorkflow(context.Background(), "ship", roles, map[string]any{"project": "demo"})
	require.NoError(t, err)

	assert.True(t, run.Success)
	assert.Equal(t, workflow.StatusCompleted, run.Status)
	assert.Equal(t, 3, run.StepsCompleted)
	assert.Equal(t, "demo", run.FinalContext["project"])

	history := forge.Workflows().History()
	require.Len(t, history, 1)
	assert.Equal(t, "ship", history[0].Workflow)
}

func TestForge_RunWorkflowMissingRoleInstance(t *testing.T) {
	forge := New()

	_, err := forge.CreateAgent(agent.TypeCoding, "coder-1", nil)
	require.NoError(t, err)

	def := workflow.NewBuilder("review").
		AddStep("coder", "Analyze").
		AddStep("debugger", "Find bugs").
		Build()
	require.NoError(t, forge.CreateWorkflow(def))

	// "debugger" maps to an instance that was never created.
	roles := map[string]string{"coder": "coder-1", "debugger": "debugger-1"}
	run, err := forge.RunWorkflow(context.Background(), "review", roles, nil)
	require.NoError(t, err)

	assert.False(t, run.Success)
	assert.Equal(t, 1, run.StepsCompleted)
	require.Len(t, run.Steps, 2)
	assert.Contains(t, run.Steps[1].Err, "not found")
}

func TestForge_RunWorkflowWithExplicitAgents(t *testing.T) {
	forge := New()

	def := workflow.BugFix("hotfix").Build()
	require.NoError(t, forge.CreateWorkflow(def))

	agents := map[string]core.Agent{
		"debugger": agent.NewDebuggingAgent("d", nil),
		"coder":    agent.NewCodingAgent("c", nil),
		"builder":  agent.NewBuildingAgent("b", nil),
	}
	run, err := forge.RunWorkflowWith(context.Background(), "hotfix", agents, map[string]any{"error_type": "TypeError"})
	require.NoError(t, err)

	assert.True(t, run.Success)
	assert.Equal(t, 4, run.StepsCompleted)
}
