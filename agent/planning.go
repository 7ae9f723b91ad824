package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/agentforge/core"
)

// TypePlanning is the registry type name of the planning agent.
const TypePlanning = "planning"

var planningCapabilities = []string{
	"project_decomposition",
	"task_breakdown",
	"timeline_estimation",
	"resource_planning",
	"dependency_mapping",
	"risk_assessment",
	"milestone_definition",
	"roadmap_creation",
}

// PlanningAgent is specialized in project planning and task breakdown. Plans
// are built from canned phase, task and risk tables keyed by methodology and
// complexity; every produced plan is retained.
type PlanningAgent struct {
	Base
	methodology string

	planMu sync.Mutex
	plans  []map[string]any
}

var _ core.Agent = (*PlanningAgent)(nil)

// NewPlanningAgent constructs a planning agent. Recognized config key:
// "methodology" (string, defaults to "agile").
func NewPlanningAgent(name string, config map[string]any) *PlanningAgent {
	a := &PlanningAgent{Base: NewBase(name, TypePlanning, config, planningCapabilities)}
	a.methodology = a.configString("methodology", "agile")
	return a
}

// Methodology returns the planning methodology this agent was configured with.
func (a *PlanningAgent) Methodology() string { return a.methodology }

// Execute performs a planning task. The task context may carry "complexity"
// (low/medium/high, default medium) and "deadline" keys.
func (a *PlanningAgent) Execute(_ context.Context, task string, taskCtx map[string]any) *core.Result {
	if !a.ValidateInput(task) {
		return core.Failure("invalid input: task must be a non-empty string")
	}

	complexity := stringFromContext(taskCtx, "complexity", "medium")
	deadline := stringFromContext(taskCtx, "deadline", "not specified")

	plan := map[string]any{
		"project":      task,
		"methodology":  a.methodology,
		"complexity":   complexity,
		"deadline":     deadline,
		"phases":       a.createPhases(),
		"tasks":        breakdownTasks(task, complexity),
		"timeline":     estimateTimeline(complexity),
		"dependencies": identifyDependencies(),
		"risks":        assessRisks(complexity),
		"milestones":   defineMilestones(),
		"resources":    estimateResources(complexity),
	}

	result := &core.Result{Success: true, Payload: plan}

	a.planMu.Lock()
	a.plans = append(a.plans, plan)
	a.planMu.Unlock()

	a.RecordExecution(task, result)

	return result
}

// createPhases returns the canned phase table for the configured methodology.
// Anything other than "agile" gets the waterfall table.
func (a *PlanningAgent) createPhases() []map[string]string {
	if a.methodology == "agile" {
		return []map[string]string{
			{"name": "Sprint Planning", "duration": "1 week"},
			{"name": "Development Sprint 1", "duration": "2 weeks"},
			{"name": "Development Sprint 2", "duration": "2 weeks"},
			{"name": "Testing & QA", "duration": "1 week"},
			{"name": "Deployment", "duration": "3 days"},
		}
	}
	return []map[string]string{
		{"name": "Requirements Analysis", "duration": "1 week"},
		{"name": "Design", "duration": "2 weeks"},
		{"name": "Implementation", "duration": "4 weeks"},
		{"name": "Testing", "duration": "2 weeks"},
		{"name": "Deployment", "duration": "1 week"},
	}
}

func breakdownTasks(project, complexity string) []map[string]any {
	taskCount := map[string]int{"low": 5, "medium": 10, "high": 20}[complexity]
	if taskCount == 0 {
		taskCount = 10
	}

	tasks := []map[string]any{
		{"id": 1, "name": fmt.Sprintf("Research and analysis for %s", project), "priority": "high", "estimated_hours": 8, "status": "pending"},
		{"id": 2, "name": "Design architecture and interfaces", "priority": "high", "estimated_hours": 16, "status": "pending"},
		{"id": 3, "name": "Implement core functionality", "priority": "high", "estimated_hours": 40, "status": "pending"},
		{"id": 4, "name": "Create unit tests", "priority": "medium", "estimated_hours": 16, "status": "pending"},
		{"id": 5, "name": "Integration testing", "priority": "medium", "estimated_hours": 12, "status": "pending"},
		{"id": 6, "name": "Documentation", "priority": "medium", "estimated_hours": 8, "status": "pending"},
		{"id": 7, "name": "Code review and refinement", "priority": "high", "estimated_hours": 8, "status": "pending"},
		{"id": 8, "name": "Deployment preparation", "priority": "medium", "estimated_hours": 4, "status": "pending"},
	}

	if taskCount > len(tasks) {
		taskCount = len(tasks)
	}
	return tasks[:taskCount]
}

func estimateTimeline(complexity string) map[string]any {
	durations := map[string]map[string]int{
		"low":    {"weeks": 2, "hours": 80},
		"medium": {"weeks": 6, "hours": 240},
		"high":   {"weeks": 12, "hours": 480},
	}
	duration, ok := durations[complexity]
	if !ok {
		duration = durations["medium"]
	}

	return map[string]any{
		"total_weeks":           duration["weeks"],
		"total_hours":           duration["hours"],
		"team_size_recommended": teamSize(complexity),
		"buffer_percentage":     20,
	}
}

func teamSize(complexity string) int {
	switch complexity {
	case "low":
		return 2
	case "medium":
		return 4
	default:
		return 6
	}
}

func identifyDependencies() []map[string]any {
	return []map[string]any{
		{"task": "Design", "depends_on": []string{"Research"}},
		{"task": "Implementation", "depends_on": []string{"Design"}},
		{"task": "Testing", "depends_on": []string{"Implementation"}},
		{"task": "Deployment", "depends_on": []string{"Testing"}},
	}
}

func assessRisks(complexity string) []map[string]string {
	risks := []map[string]string{
		{
			"risk":        "Scope creep",
			"impact":      "high",
			"probability": "medium",
			"mitigation":  "Clear requirements and change management process",
		},
		{
			"risk":        "Technical debt",
			"impact":      "medium",
			"probability": "medium",
			"mitigation":  "Regular code reviews and refactoring sprints",
		},
		{
			"risk":        "Integration issues",
			"impact":      "high",
			"probability": "low",
			"mitigation":  "Early integration testing and API contracts",
		},
	}

	if complexity == "high" {
		risks = append(risks, map[string]string{
			"risk":        "Resource constraints",
			"impact":      "high",
			"probability": "medium",
			"mitigation":  "Buffer time and flexible team allocation",
		})
	}

	return risks
}

func defineMilestones() []map[string]string {
	return []map[string]string{
		{"name": "Requirements Complete", "deliverable": "Requirements document"},
		{"name": "Design Approved", "deliverable": "Architecture and design docs"},
		{"name": "MVP Complete", "deliverable": "Minimum viable product"},
		{"name": "Testing Complete", "deliverable": "Test reports and fixes"},
		{"name": "Production Ready", "deliverable": "Deployed application"},
	}
}

func estimateResources(complexity string) map[string]any {
	testers := 1
	if complexity != "low" {
		testers = 2
	}
	return map[string]any{
		"developers":      teamSize(complexity),
		"testers":         testers,
		"project_manager": 0.5, // part-time
		"tools":           []string{"IDE", "Version Control", "CI/CD", "Testing Framework"},
		"infrastructure":  []string{"Development Environment", "Testing Environment", "Production Environment"},
	}
}

// Plans returns a copy of every plan produced by this agent.
func (a *PlanningAgent) Plans() []map[string]any {
	a.planMu.Lock()
	defer a.planMu.Unlock()
	out := make([]map[string]any, len(a.plans))
	copy(out, a.plans)
	return out
}
