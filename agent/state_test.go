package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentforge/core"
)

func codingCtor(name string, config map[string]any) (core.Agent, error) {
	return NewCodingAgent(name, config), nil
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	a := NewCodingAgent("coder", map[string]any{"languages": []string{"Go", "Rust"}})
	a.Execute(context.Background(), "write a parser", nil)
	a.Execute(context.Background(), "write a lexer", map[string]any{"language": "Rust"})

	data, err := Serialize(a)
	require.NoError(t, err)

	restored, err := Deserialize(data, codingCtor)
	require.NoError(t, err)

	assert.Equal(t, "coder", restored.Name())
	assert.Equal(t, TypeCoding, restored.Type())

	info := restored.Info()
	assert.Equal(t, a.Info().Metadata, info.Metadata)
	assert.True(t, info.CreatedAt.Equal(a.Info().CreatedAt))
	assert.Equal(t, []string{"Go", "Rust"}, restored.(*CodingAgent).SupportedLanguages())

	history := restored.History()
	require.Len(t, history, 2)
	assert.Equal(t, "write a parser", history[0].Task)
	assert.Equal(t, "write a lexer", history[1].Task)
	assert.Equal(t, a.History()[0].ID, history[0].ID)
}

func TestDeserialize_NilConstructor(t *testing.T) {
	_, err := Deserialize([]byte(`{}`), nil)
	assert.ErrorIs(t, err, core.ErrNilConstructor)
}

func TestDeserialize_InvalidJSON(t *testing.T) {
	_, err := Deserialize([]byte(`not json`), codingCtor)
	assert.Error(t, err)
}

func TestDeserialize_FreshAgentWithoutHistory(t *testing.T) {
	a := NewDebuggingAgent("debugger", nil)

	data, err := Serialize(a)
	require.NoError(t, err)

	restored, err := Deserialize(data, func(name string, config map[string]any) (core.Agent, error) {
		return NewDebuggingAgent(name, config), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "debugger", restored.Name())
	assert.Zero(t, restored.(*DebuggingAgent).ExecutionCount())
}
