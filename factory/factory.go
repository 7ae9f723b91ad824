// Package factory owns named agent instances. A Factory instantiates agents
// via the constructors of the registry it was handed, stores them under their
// unique instance names and delegates task execution to them.
package factory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/logging"
	"github.com/hupe1980/agentforge/registry"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// MaxAgents caps the number of active agents. Zero means unlimited.
	MaxAgents int
	// Logger receives structured lifecycle and execution logs.
	Logger logging.Logger
}

// Factory creates and manages live agent instances. Public methods are safe
// for concurrent use.
type Factory struct {
	registry *registry.Registry

	maxAgents int
	logger    logging.Logger

	mu     sync.RWMutex
	agents map[string]core.Agent
	order  []string
}

// New constructs a Factory backed by the given registry with optional overrides.
func New(reg *registry.Registry, optFns ...func(o *Options)) *Factory {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Factory{
		registry:  reg,
		maxAgents: opts.MaxAgents,
		logger:    opts.Logger,
		agents:    make(map[string]core.Agent),
	}
}

// Registry returns the registry this factory resolves type names against.
func (f *Factory) Registry() *registry.Registry { return f.registry }

// RegisterType registers a new agent type with the underlying registry.
func (f *Factory) RegisterType(typeName string, ctor core.Constructor) error {
	return f.registry.Register(typeName, ctor)
}

// AvailableTypes lists the type names that can currently be instantiated.
func (f *Factory) AvailableTypes() []string { return f.registry.Types() }

// CreateAgent instantiates a new agent of the given registered type and
// stores it under name. It returns core.ErrUnknownType for unregistered
// types, core.ErrDuplicateName when name is already active and
// core.ErrAgentLimit when the configured cap is reached.
func (f *Factory) CreateAgent(typeName, name string, config map[string]any) (core.Agent, error) {
	ctor, ok := f.registry.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available types: %s)",
			core.ErrUnknownType, typeName, strings.Join(f.registry.Types(), ", "))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.agents[name]; exists {
		return nil, fmt.Errorf("%w: %q", core.ErrDuplicateName, name)
	}
	if f.maxAgents > 0 && len(f.agents) >= f.maxAgents {
		return nil, fmt.Errorf("%w: %d active agents", core.ErrAgentLimit, len(f.agents))
	}

	agent, err := ctor(name, config)
	if err != nil {
		return nil, fmt.Errorf("construct agent %q of type %q: %w", name, typeName, err)
	}

	f.agents[name] = agent
	f.order = append(f.order, name)
	f.logger.Info("agent created", "name", name, "type", typeName)

	return agent, nil
}

// GetAgent returns the active agent stored under name, if any.
func (f *Factory) GetAgent(name string) (core.Agent, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	agent, ok := f.agents[name]
	return agent, ok
}

// ListAgents returns the names of all active agents in creation order.
func (f *Factory) ListAgents() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Agents returns a snapshot map of all active agents keyed by name. The map
// is a copy; the agent instances are shared.
func (f *Factory) Agents() map[string]core.Agent {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]core.Agent, len(f.agents))
	for name, agent := range f.agents {
		out[name] = agent
	}
	return out
}

// RemoveAgent deletes the agent stored under name, reporting prior presence.
func (f *Factory) RemoveAgent(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.agents[name]; !exists {
		return false
	}

	delete(f.agents, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	f.logger.Info("agent removed", "name", name)

	return true
}

// AgentInfo returns the info snapshot of the named agent, if active.
func (f *Factory) AgentInfo(name string) (core.AgentInfo, bool) {
	agent, ok := f.GetAgent(name)
	if !ok {
		return core.AgentInfo{}, false
	}
	return agent.Info(), true
}

// AllAgentInfo returns info snapshots for every active agent keyed by name.
func (f *Factory) AllAgentInfo() map[string]core.AgentInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]core.AgentInfo, len(f.agents))
	for name, agent := range f.agents {
		out[name] = agent.Info()
	}
	return out
}

// ExecuteTask delegates a task to the named agent. It returns
// core.ErrAgentNotFound when no agent is active under name; agent-level
// failures are reported inside the returned Result, not as an error.
func (f *Factory) ExecuteTask(ctx context.Context, name, task string, taskCtx map[string]any) (*core.Result, error) {
	agent, ok := f.GetAgent(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrAgentNotFound, name)
	}

	result := agent.Execute(ctx, task, taskCtx)
	f.logger.Debug("task executed", "agent", name, "task", task, "success", result.Success)

	return result, nil
}

// ClearAgents removes all active agents. The registry is untouched.
func (f *Factory) ClearAgents() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents = make(map[string]core.Agent)
	f.order = nil
}
