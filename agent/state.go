package agent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hupe1980/agentforge/core"
)

// persistedState is the JSON document form of an agent's durable state.
type persistedState struct {
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Config    map[string]any         `json:"config"`
	CreatedAt time.Time              `json:"created_at"`
	Metadata  core.Metadata          `json:"metadata"`
	History   []core.ExecutionRecord `json:"history"`
}

// Serialize exports an agent's state as a JSON document carrying name, type,
// config, creation timestamp, metadata and the execution history.
func Serialize(a core.Agent) ([]byte, error) {
	info := a.Info()

	state := persistedState{
		Name:      info.Name,
		Type:      info.Type,
		Config:    info.Config,
		CreatedAt: info.CreatedAt,
		Metadata:  info.Metadata,
		History:   a.History(),
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize agent %q: %w", info.Name, err)
	}

	return data, nil
}

// Deserialize reconstructs an agent from a JSON document produced by
// Serialize. The caller supplies the constructor matching the document's
// type; the document's creation timestamp, metadata and history overwrite the
// freshly constructed instance while all other fields keep their constructor
// defaults.
func Deserialize(data []byte, ctor core.Constructor) (core.Agent, error) {
	if ctor == nil {
		return nil, core.ErrNilConstructor
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("deserialize agent: %w", err)
	}

	a, err := ctor(state.Name, state.Config)
	if err != nil {
		return nil, fmt.Errorf("reconstruct agent %q: %w", state.Name, err)
	}

	if restorer, ok := a.(interface {
		restore(time.Time, core.Metadata, []core.ExecutionRecord)
	}); ok {
		restorer.restore(state.CreatedAt, state.Metadata, state.History)
	}

	return a, nil
}
