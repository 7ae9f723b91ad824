// Package agent contains the embeddable Base agent plus the built-in agent
// variants of AgentForge. The package focuses on three concerns:
//
//  1. Shared instance state and bookkeeping (Base): name, type, config,
//     metadata and the append-only execution history
//  2. Concrete template-driven variants (CodingAgent, DebuggingAgent,
//     PlanningAgent, BuildingAgent) whose Execute builds a Result from static
//     lookup tables
//  3. State serialization (Serialize / Deserialize) for persisting and
//     restoring agent instances
//
// Design principles:
//   - No hidden global state — agents are wired explicitly via registry and factory
//   - Extensibility — embed Base; only implement Execute plus any custom API
//   - Input validation runs first in every Execute and reports failure via
//     the Result envelope, never a panic
//
// All numeric "scores" and "rates" produced by the variants are deliberate
// stub values, not measurements.
package agent
