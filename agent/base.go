package agent

import (
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/agentforge/core"
)

// metadataVersion is stamped into every agent's metadata.
const metadataVersion = "1.0.0"

// Base bundles the instance state shared by all agent variants: identity,
// configuration, metadata and the append-only execution history. Embed it in
// concrete agent implementations and supply an Execute method to satisfy the
// core.Agent interface. All exported methods are goroutine-safe unless
// otherwise documented.
type Base struct {
	name      string
	agentType string
	createdAt time.Time
	metadata  core.Metadata

	mu      sync.Mutex
	config  map[string]any
	history []core.ExecutionRecord
}

// NewBase constructs a Base with the given identity, configuration and
// capability list. A nil config is treated as empty.
func NewBase(name, agentType string, config map[string]any, capabilities []string) Base {
	if config == nil {
		config = map[string]any{}
	}
	return Base{
		name:      name,
		agentType: agentType,
		createdAt: time.Now(),
		config:    config,
		metadata: core.Metadata{
			Version:      metadataVersion,
			Capabilities: capabilities,
		},
	}
}

// Name returns the unique instance name assigned at creation.
func (b *Base) Name() string { return b.name }

// Type returns the agent type identifier.
func (b *Base) Type() string { return b.agentType }

// CreatedAt returns the instance creation timestamp.
func (b *Base) CreatedAt() time.Time { return b.createdAt }

// Capabilities returns a copy of this agent's capability identifiers.
func (b *Base) Capabilities() []string {
	out := make([]string, len(b.metadata.Capabilities))
	copy(out, b.metadata.Capabilities)
	return out
}

// Config returns a copy of the agent's configuration mapping.
func (b *Base) Config() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]any, len(b.config))
	for k, v := range b.config {
		out[k] = v
	}
	return out
}

// UpdateConfig merges the given key/value pairs into the configuration.
func (b *Base) UpdateConfig(delta map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, v := range delta {
		b.config[k] = v
	}
}

// ValidateInput checks the task shape before execution. An empty or
// whitespace-only task is rejected; taskCtx is structurally typed and needs
// no check. Every concrete Execute must run this first.
func (b *Base) ValidateInput(task string) bool {
	return strings.TrimSpace(task) != ""
}

// RecordExecution appends a record to the agent's execution history. The
// history is audit/export data only and is never consulted for control flow.
func (b *Base) RecordExecution(task string, result *core.Result) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = append(b.history, core.ExecutionRecord{
		ID:        core.NewID(),
		Timestamp: time.Now(),
		AgentType: b.agentType,
		Task:      task,
		Result:    result,
	})
}

// History returns a copy of the execution history.
func (b *Base) History() []core.ExecutionRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]core.ExecutionRecord, len(b.history))
	copy(out, b.history)
	return out
}

// ExecutionCount returns the number of recorded executions.
func (b *Base) ExecutionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.history)
}

// Info returns a point-in-time snapshot of this agent.
func (b *Base) Info() core.AgentInfo {
	return core.AgentInfo{
		Name:           b.name,
		Type:           b.agentType,
		CreatedAt:      b.createdAt,
		Capabilities:   b.Capabilities(),
		Config:         b.Config(),
		Metadata:       b.metadata,
		ExecutionCount: b.ExecutionCount(),
	}
}

// restore overwrites the persisted portions of the base state. Used by
// Deserialize; all other fields keep their constructor defaults.
func (b *Base) restore(createdAt time.Time, metadata core.Metadata, history []core.ExecutionRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.createdAt = createdAt
	b.metadata = metadata
	b.history = history
}

// configStrings reads a []string config value, falling back to def when the
// key is absent or not a string list. Accepts both []string and []any values
// so configurations decoded from JSON/YAML documents work unchanged.
func (b *Base) configStrings(key string, def []string) []string {
	b.mu.Lock()
	raw, ok := b.config[key]
	b.mu.Unlock()
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	default:
		return def
	}
}

// configString reads a string config value, falling back to def.
func (b *Base) configString(key, def string) string {
	b.mu.Lock()
	raw, ok := b.config[key]
	b.mu.Unlock()
	if !ok {
		return def
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return def
}

// stringFromContext reads a string from a task context mapping, falling back
// to def when the key is absent or not a string.
func stringFromContext(taskCtx map[string]any, key, def string) string {
	if taskCtx == nil {
		return def
	}
	if s, ok := taskCtx[key].(string); ok {
		return s
	}
	return def
}
