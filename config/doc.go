// Package config loads, saves and validates AgentForge configuration
// documents. Documents are plain mappings in JSON or YAML with the recognized
// top-level sections factory, agents and workflows; unknown keys are ignored
// and missing optional keys fall back to the documented defaults.
//
// Validation is non-throwing: validators return a Report carrying a valid
// flag and human-readable error strings. Only structurally malformed input
// (a document whose top level is not a mapping) surfaces as an error.
package config
