package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/agentforge/core"
)

// TypeDebugging is the registry type name of the debugging agent.
const TypeDebugging = "debugging"

// defaultStrategies are used when the config carries no "strategies" key.
var defaultStrategies = []string{
	"print_debugging",
	"breakpoint_analysis",
	"log_analysis",
	"unit_testing",
}

var debuggingCapabilities = []string{
	"error_analysis",
	"stack_trace_parsing",
	"bug_identification",
	"fix_suggestion",
	"root_cause_analysis",
	"debugging_strategy_recommendation",
	"bug_tracking",
}

// likelyCauses maps an error type onto its canned cause list. The "unknown"
// entry doubles as the fallback for unmapped types.
var likelyCauses = map[string][]string{
	"NullPointerException": {"Uninitialized variable", "Null return value", "Missing null check"},
	"IndexError":           {"Array out of bounds", "Empty collection access", "Off-by-one error"},
	"TypeError":            {"Wrong data type", "Invalid operation", "Missing type conversion"},
	"SyntaxError":          {"Typo in code", "Missing bracket/parenthesis", "Invalid syntax"},
	"unknown":              {"Check input data", "Review recent changes", "Verify dependencies"},
}

var debugStrategies = map[string]string{
	"NullPointerException": "Use breakpoint debugging to track variable initialization",
	"IndexError":           "Add logging to track collection sizes and access patterns",
	"TypeError":            "Add type hints and use a type checker",
	"SyntaxError":          "Use IDE syntax highlighting and linting tools",
}

// bugEntry is one record of the agent's internal bug log.
type bugEntry struct {
	Description string         `json:"description"`
	ErrorType   string         `json:"error_type"`
	Analysis    map[string]any `json:"analysis"`
}

// DebuggingAgent is specialized in error analysis and fix suggestion. Every
// executed task is also appended to an internal bug log; the five most recent
// entries feed the similar-bug scan.
type DebuggingAgent struct {
	Base
	strategies []string

	bugMu  sync.Mutex
	bugLog []bugEntry
}

var _ core.Agent = (*DebuggingAgent)(nil)

// NewDebuggingAgent constructs a debugging agent. Recognized config key:
// "strategies" (list of strings).
func NewDebuggingAgent(name string, config map[string]any) *DebuggingAgent {
	a := &DebuggingAgent{Base: NewBase(name, TypeDebugging, config, debuggingCapabilities)}
	a.strategies = a.configStrings("strategies", defaultStrategies)
	return a
}

// Strategies returns the debugging strategies this agent was configured with.
func (a *DebuggingAgent) Strategies() []string {
	out := make([]string, len(a.strategies))
	copy(out, a.strategies)
	return out
}

// Execute performs a debugging task. The task context may carry "error_type",
// "code" and "stack_trace" keys.
func (a *DebuggingAgent) Execute(_ context.Context, task string, taskCtx map[string]any) *core.Result {
	if !a.ValidateInput(task) {
		return core.Failure("invalid input: task must be a non-empty string")
	}

	errorType := stringFromContext(taskCtx, "error_type", "unknown")
	stackTrace := stringFromContext(taskCtx, "stack_trace", "")

	analysis := a.analyzeError(task, errorType, stackTrace)

	result := &core.Result{
		Success: true,
		Payload: map[string]any{
			"task":               task,
			"error_type":         errorType,
			"analysis":           analysis,
			"suggested_fixes":    a.suggestFixes(),
			"debugging_strategy": a.recommendStrategy(errorType),
			"severity":           assessSeverity(errorType),
			"similar_bugs":       a.findSimilarBugs(task),
		},
	}

	a.logBug(task, errorType, analysis)
	a.RecordExecution(task, result)

	return result
}

func (a *DebuggingAgent) analyzeError(errorMsg, errorType, stackTrace string) map[string]any {
	causes, ok := likelyCauses[errorType]
	if !ok {
		causes = likelyCauses["unknown"]
	}
	return map[string]any{
		"error_message":       errorMsg,
		"error_type":          errorType,
		"likely_causes":       causes,
		"stack_trace_summary": summarizeStackTrace(stackTrace),
		"affected_components": []string{"module_to_be_determined"},
	}
}

func (a *DebuggingAgent) suggestFixes() []string {
	return []string{
		"Add nil checks before accessing objects",
		"Validate input parameters",
		"Add error handling around failing calls",
		"Check array/list bounds before access",
		"Review initialization sequence",
		"Add defensive programming checks",
	}
}

func (a *DebuggingAgent) recommendStrategy(errorType string) string {
	if strategy, ok := debugStrategies[errorType]; ok {
		return strategy
	}
	return "Use systematic print/log debugging"
}

func assessSeverity(errorType string) string {
	switch errorType {
	case "MemoryError", "StackOverflowError", "SecurityException":
		return "critical"
	case "NullPointerException", "IndexError":
		return "high"
	default:
		return "medium"
	}
}

func summarizeStackTrace(stackTrace string) string {
	if stackTrace == "" {
		return "No stack trace provided"
	}
	frames := len(strings.Split(stackTrace, "\n"))
	return fmt.Sprintf("Stack trace has %d frames. Review the most recent calls.", frames)
}

func (a *DebuggingAgent) logBug(description, errorType string, analysis map[string]any) {
	a.bugMu.Lock()
	defer a.bugMu.Unlock()
	a.bugLog = append(a.bugLog, bugEntry{
		Description: description,
		ErrorType:   errorType,
		Analysis:    analysis,
	})
}

// findSimilarBugs scans the five most recent bug log entries for word overlap
// with the given description and returns their descriptions, truncated to 100
// characters.
func (a *DebuggingAgent) findSimilarBugs(description string) []string {
	a.bugMu.Lock()
	defer a.bugMu.Unlock()

	recent := a.bugLog
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	words := strings.Fields(strings.ToLower(description))
	similar := []string{}
	for _, bug := range recent {
		logged := strings.ToLower(bug.Description)
		for _, word := range words {
			if strings.Contains(logged, word) {
				desc := bug.Description
				if len(desc) > 100 {
					desc = desc[:100]
				}
				similar = append(similar, desc)
				break
			}
		}
	}

	return similar
}

// BugStatistics summarizes the agent's bug log: total count, distinct error
// types and the five most recent entries.
func (a *DebuggingAgent) BugStatistics() map[string]any {
	a.bugMu.Lock()
	defer a.bugMu.Unlock()

	seen := map[string]bool{}
	types := []string{}
	for _, bug := range a.bugLog {
		if !seen[bug.ErrorType] {
			seen[bug.ErrorType] = true
			types = append(types, bug.ErrorType)
		}
	}

	recent := a.bugLog
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentCopy := make([]bugEntry, len(recent))
	copy(recentCopy, recent)

	return map[string]any{
		"total_bugs":  len(a.bugLog),
		"error_types": types,
		"recent_bugs": recentCopy,
	}
}
