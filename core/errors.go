package core

import "errors"

var (
	// ErrDuplicateType is returned when registering a type name that is
	// already present in a registry.
	ErrDuplicateType = errors.New("agent type already registered")

	// ErrNilConstructor is returned when registering a nil constructor.
	ErrNilConstructor = errors.New("constructor must not be nil")

	// ErrUnknownType is returned when creating an agent of an unregistered type.
	ErrUnknownType = errors.New("agent type not registered")

	// ErrDuplicateName is returned when creating an agent under a name that
	// is already active in the factory.
	ErrDuplicateName = errors.New("agent name already in use")

	// ErrAgentNotFound is returned when executing a task against an inactive
	// agent name.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrAgentLimit is returned when the factory's agent cap is reached.
	ErrAgentLimit = errors.New("agent limit reached")

	// ErrWorkflowExists is returned when creating a workflow under a name
	// that is already defined.
	ErrWorkflowExists = errors.New("workflow already exists")

	// ErrWorkflowNotFound is returned when executing or inspecting an
	// unknown workflow name.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrInvalidInput is returned for structurally malformed input, e.g. a
	// configuration document whose top level is not a mapping.
	ErrInvalidInput = errors.New("invalid input")
)
