// Package agentforge provides a high-level façade over the registry, factory
// and workflow services enabling rapid construction of template-driven
// multi-agent pipelines. Most applications interact with this package by:
//  1. Creating a Forge via New() (the four built-in agent types are
//     registered automatically; custom types via RegisterType)
//  2. Creating named agent instances (CreateAgent)
//  3. Defining workflows (CreateWorkflow, typically via workflow.NewBuilder)
//     and running them (RunWorkflow)
//
// The façade delegates to factory.Factory and workflow.Manager while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; supply a structured logger for production use.
package agentforge

import (
	"context"

	"github.com/hupe1980/agentforge/agent"
	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/factory"
	"github.com/hupe1980/agentforge/logging"
	"github.com/hupe1980/agentforge/registry"
	"github.com/hupe1980/agentforge/workflow"
)

// Options configures the Forge instance.
type Options struct {
	// MaxAgents caps the number of active agents the factory will hold.
	// Zero means unlimited.
	MaxAgents int

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Forge is the high-level façade aggregating registry, factory and workflow
// manager.
type Forge struct {
	registry  *registry.Registry
	factory   *factory.Factory
	workflows *workflow.Manager
	logger    logging.Logger
}

// New creates a new Forge instance with optional overrides. The built-in
// agent types (coding, debugging, planning, building) are pre-registered.
func New(optFns ...func(o *Options)) *Forge {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	reg := registry.New()
	// A fresh registry cannot hold duplicates, so registration cannot fail.
	_ = reg.Register(agent.TypeCoding, func(name string, cfg map[string]any) (core.Agent, error) {
		return agent.NewCodingAgent(name, cfg), nil
	})
	_ = reg.Register(agent.TypeDebugging, func(name string, cfg map[string]any) (core.Agent, error) {
		return agent.NewDebuggingAgent(name, cfg), nil
	})
	_ = reg.Register(agent.TypePlanning, func(name string, cfg map[string]any) (core.Agent, error) {
		return agent.NewPlanningAgent(name, cfg), nil
	})
	_ = reg.Register(agent.TypeBuilding, func(name string, cfg map[string]any) (core.Agent, error) {
		return agent.NewBuildingAgent(name, cfg), nil
	})

	f := factory.New(reg, func(o *factory.Options) {
		o.MaxAgents = opts.MaxAgents
		o.Logger = opts.Logger
	})

	wm := workflow.NewManager(func(o *workflow.Options) {
		o.Logger = opts.Logger
	})

	return &Forge{registry: reg, factory: f, workflows: wm, logger: opts.Logger}
}

// Registry returns the underlying type registry.
func (f *Forge) Registry() *registry.Registry { return f.registry }

// Factory returns the underlying agent factory.
func (f *Forge) Factory() *factory.Factory { return f.factory }

// Workflows returns the underlying workflow manager.
func (f *Forge) Workflows() *workflow.Manager { return f.workflows }

// RegisterType registers a custom agent type.
func (f *Forge) RegisterType(typeName string, ctor core.Constructor) error {
	return f.registry.Register(typeName, ctor)
}

// CreateAgent instantiates a new agent of the given registered type.
func (f *Forge) CreateAgent(typeName, name string, config map[string]any) (core.Agent, error) {
	return f.factory.CreateAgent(typeName, name, config)
}

// GetAgent returns the active agent stored under name, if any.
func (f *Forge) GetAgent(name string) (core.Agent, bool) {
	return f.factory.GetAgent(name)
}

// RemoveAgent deletes the named agent, reporting prior presence.
func (f *Forge) RemoveAgent(name string) bool {
	return f.factory.RemoveAgent(name)
}

// ExecuteTask delegates a task to the named agent.
func (f *Forge) ExecuteTask(ctx context.Context, name, task string, taskCtx map[string]any) (*core.Result, error) {
	return f.factory.ExecuteTask(ctx, name, task, taskCtx)
}

// CreateWorkflow stores a workflow definition with the workflow manager.
func (f *Forge) CreateWorkflow(def workflow.Definition) error {
	return f.workflows.Create(def)
}

// RunWorkflow executes a stored workflow. The roles mapping resolves each
// step's agent role onto an active agent instance name; roles whose instance
// is missing are simply absent from the run, which the manager reports as a
// failed step.
func (f *Forge) RunWorkflow(ctx context.Context, name string, roles map[string]string, initial map[string]any) (*workflow.RunResult, error) {
	agents := make(map[string]core.Agent, len(roles))
	for role, instanceName := range roles {
		if a, ok := f.factory.GetAgent(instanceName); ok {
			agents[role] = a
		}
	}
	return f.workflows.Execute(ctx, name, agents, initial)
}

// RunWorkflowWith executes a stored workflow against an explicit agent map,
// bypassing the factory's active set.
func (f *Forge) RunWorkflowWith(ctx context.Context, name string, agents map[string]core.Agent, initial map[string]any) (*workflow.RunResult, error) {
	return f.workflows.Execute(ctx, name, agents, initial)
}
