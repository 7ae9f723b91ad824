package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanningAgent_Defaults(t *testing.T) {
	a := NewPlanningAgent("planner", nil)

	assert.Equal(t, TypePlanning, a.Type())
	assert.Equal(t, "agile", a.Methodology())
	assert.Contains(t, a.Capabilities(), "task_breakdown")
}

func TestPlanningAgent_ExecuteAgilePlan(t *testing.T) {
	a := NewPlanningAgent("planner", nil)

	result := a.Execute(context.Background(), "Build a REST API", map[string]any{
		"complexity": "low",
		"deadline":   "2026-10-01",
	})
	require.True(t, result.Success)

	assert.Equal(t, "Build a REST API", result.Payload["project"])
	assert.Equal(t, "agile", result.Payload["methodology"])
	assert.Equal(t, "low", result.Payload["complexity"])
	assert.Equal(t, "2026-10-01", result.Payload["deadline"])

	phases := result.Payload["phases"].([]map[string]string)
	require.Len(t, phases, 5)
	assert.Equal(t, "Sprint Planning", phases[0]["name"])

	tasks := result.Payload["tasks"].([]map[string]any)
	assert.Len(t, tasks, 5)
	assert.Equal(t, "Research and analysis for Build a REST API", tasks[0]["name"])
}

func TestPlanningAgent_WaterfallPhases(t *testing.T) {
	a := NewPlanningAgent("planner", map[string]any{"methodology": "waterfall"})

	result := a.Execute(context.Background(), "Migrate legacy system", nil)
	require.True(t, result.Success)

	phases := result.Payload["phases"].([]map[string]string)
	require.Len(t, phases, 5)
	assert.Equal(t, "Requirements Analysis", phases[0]["name"])
	assert.Equal(t, "Implementation", phases[2]["name"])
}

func TestBreakdownTasks(t *testing.T) {
	assert.Len(t, breakdownTasks("p", "low"), 5)
	assert.Len(t, breakdownTasks("p", "medium"), 8)
	assert.Len(t, breakdownTasks("p", "high"), 8)
	// Unknown complexity falls back to the medium count.
	assert.Len(t, breakdownTasks("p", "extreme"), 8)
}

func TestEstimateTimeline(t *testing.T) {
	low := estimateTimeline("low")
	assert.Equal(t, 2, low["total_weeks"])
	assert.Equal(t, 80, low["total_hours"])
	assert.Equal(t, 2, low["team_size_recommended"])

	high := estimateTimeline("high")
	assert.Equal(t, 12, high["total_weeks"])
	assert.Equal(t, 6, high["team_size_recommended"])

	fallback := estimateTimeline("unknown")
	assert.Equal(t, 6, fallback["total_weeks"])
	assert.Equal(t, 20, fallback["buffer_percentage"])
}

func TestAssessRisks(t *testing.T) {
	assert.Len(t, assessRisks("medium"), 3)

	high := assessRisks("high")
	require.Len(t, high, 4)
	assert.Equal(t, "Resource constraints", high[3]["risk"])
}

func TestEstimateResources(t *testing.T) {
	low := estimateResources("low")
	assert.Equal(t, 2, low["developers"])
	assert.Equal(t, 1, low["testers"])
	assert.Equal(t, 0.5, low["project_manager"])

	high := estimateResources("high")
	assert.Equal(t, 6, high["developers"])
	assert.Equal(t, 2, high["testers"])
}

func TestPlanningAgent_RetainsPlans(t *testing.T) {
	a := NewPlanningAgent("planner", nil)

	a.Execute(context.Background(), "project one", nil)
	a.Execute(context.Background(), "project two", nil)

	plans := a.Plans()
	require.Len(t, plans, 2)
	assert.Equal(t, "project one", plans[0]["project"])
	assert.Equal(t, "project two", plans[1]["project"])
}
