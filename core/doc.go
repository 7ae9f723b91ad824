// Package core provides the foundational domain types and interfaces used by
// AgentForge. It defines the core abstractions for:
//
//   - Agents (named, typed units of task execution)
//   - Results (the generic success/payload/error envelope every execution returns)
//   - Execution records (append-only per-agent audit history)
//   - Constructors (factory functions the registry maps type names onto)
//
// The package intentionally keeps implementation concerns (concrete agents,
// registry, factory, workflow orchestration) out of scope, exposing small
// types to enable custom agent implementations and extensions.
package core
