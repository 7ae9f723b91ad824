// Package testutil provides shared fixtures for package tests: a scriptable
// StubAgent satisfying core.Agent without any lookup-table behavior.
package testutil
