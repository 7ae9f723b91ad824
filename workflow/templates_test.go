package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tests := []struct {
		name     string
		builder  *Builder
		steps    int
		agents   []string
		contains string
	}{
		{
			name:     "full development",
			builder:  FullDevelopment("dev"),
			steps:    5,
			agents:   []string{"planner", "coder", "debugger", "coder", "builder"},
			contains: "lifecycle",
		},
		{
			name:     "code review",
			builder:  CodeReview("review"),
			steps:    3,
			agents:   []string{"coder", "debugger", "coder"},
			contains: "review",
		},
		{
			name:     "deployment",
			builder:  Deployment("deploy"),
			steps:    3,
			agents:   []string{"builder", "builder", "builder"},
			contains: "deployment",
		},
		{
			name:     "bug fix",
			builder:  BugFix("fix"),
			steps:    4,
			agents:   []string{"debugger", "coder", "debugger", "builder"},
			contains: "fixing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := tt.builder.Build()
			require.Len(t, def.Steps, tt.steps)
			assert.Contains(t, def.Description, tt.contains)
			for i, agent := range tt.agents {
				assert.Equal(t, agent, def.Steps[i].Agent)
				assert.Equal(t, KindSequential, def.Steps[i].Kind)
			}
		})
	}
}

func TestTemplates_RemainAdjustable(t *testing.T) {
	def := CodeReview("review").
		AddStep("builder", "Package the reviewed code").
		Build()

	require.Len(t, def.Steps, 4)
	assert.Equal(t, "builder", def.Steps[3].Agent)
}
