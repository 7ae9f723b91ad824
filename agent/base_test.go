package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentforge/core"
)

func TestBase_ValidateInput(t *testing.T) {
	b := NewBase("test", "stub", nil, nil)

	assert.True(t, b.ValidateInput("write a parser"))
	assert.False(t, b.ValidateInput(""))
	assert.False(t, b.ValidateInput("   "))
}

func TestBase_HistoryIsAppendOnlyCopy(t *testing.T) {
	b := NewBase("test", "stub", nil, nil)

	b.RecordExecution("task one", &core.Result{Success: true})
	b.RecordExecution("task two", &core.Result{Success: true})

	history := b.History()
	require.Len(t, history, 2)
	assert.Equal(t, "task one", history[0].Task)
	assert.Equal(t, "stub", history[0].AgentType)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)

	// Mutating the returned slice must not affect internal state.
	history[0].Task = "mutated"
	assert.Equal(t, "task one", b.History()[0].Task)
}

func TestBase_ConfigCopyAndUpdate(t *testing.T) {
	b := NewBase("test", "stub", map[string]any{"a": 1}, nil)

	cfg := b.Config()
	cfg["a"] = 99
	assert.Equal(t, 1, b.Config()["a"])

	b.UpdateConfig(map[string]any{"a": 2, "b": "x"})
	assert.Equal(t, 2, b.Config()["a"])
	assert.Equal(t, "x", b.Config()["b"])
}

func TestBase_ConfigStringsAcceptsDecodedLists(t *testing.T) {
	// JSON/YAML decoding produces []any, Go callers pass []string; both work.
	b := NewBase("test", "stub", map[string]any{"langs": []any{"Go", "Rust"}}, nil)
	assert.Equal(t, []string{"Go", "Rust"}, b.configStrings("langs", nil))

	b = NewBase("test", "stub", map[string]any{"langs": []string{"Go"}}, nil)
	assert.Equal(t, []string{"Go"}, b.configStrings("langs", nil))

	b = NewBase("test", "stub", map[string]any{"langs": "Go"}, nil)
	assert.Equal(t, []string{"fallback"}, b.configStrings("langs", []string{"fallback"}))
}

func TestBase_Info(t *testing.T) {
	b := NewBase("test", "stub", map[string]any{"k": "v"}, []string{"cap_a", "cap_b"})
	b.RecordExecution("task", &core.Result{Success: true})

	info := b.Info()
	assert.Equal(t, "test", info.Name)
	assert.Equal(t, "stub", info.Type)
	assert.Equal(t, []string{"cap_a", "cap_b"}, info.Capabilities)
	assert.Equal(t, "v", info.Config["k"])
	assert.Equal(t, metadataVersion, info.Metadata.Version)
	assert.Equal(t, 1, info.ExecutionCount)
	assert.False(t, info.CreatedAt.IsZero())
}

func TestVariants_RejectInvalidInput(t *testing.T) {
	agents := []core.Agent{
		NewCodingAgent("c", nil),
		NewDebuggingAgent("d", nil),
		NewPlanningAgent("p", nil),
		NewBuildingAgent("b", nil),
	}

	for _, a := range agents {
		result := a.Execute(context.Background(), "", nil)
		assert.False(t, result.Success, "agent type %s", a.Type())
		assert.NotEmpty(t, result.Error, "agent type %s", a.Type())
		// Failed validation must not pollute the history.
		assert.Empty(t, a.History(), "agent type %s", a.Type())
	}
}

func TestVariants_RecordHistoryOnExecution(t *testing.T) {
	agents := []core.Agent{
		NewCodingAgent("c", nil),
		NewDebuggingAgent("d", nil),
		NewPlanningAgent("p", nil),
		NewBuildingAgent("b", nil),
	}

	for _, a := range agents {
		result := a.Execute(context.Background(), "some task", nil)
		require.True(t, result.Success, "agent type %s", a.Type())

		history := a.History()
		require.Len(t, history, 1, "agent type %s", a.Type())
		assert.Equal(t, "some task", history[0].Task)
		assert.Equal(t, a.Type(), history[0].AgentType)
		assert.Same(t, result, history[0].Result)
	}
}
