package workflow

// Pre-defined workflow builders covering common development lifecycles. Each
// returns a Builder so callers can adjust the steps before Build().

// FullDevelopment covers the complete development lifecycle from planning to
// CI/CD setup.
func FullDevelopment(name string) *Builder {
	return NewBuilder(name).
		Description("Complete development lifecycle workflow").
		AddStep("planner", "Create project plan and task breakdown").
		AddStep("coder", "Implement core functionality based on plan").
		AddStep("debugger", "Review code and identify potential issues").
		AddStep("coder", "Fix identified issues and refactor").
		AddStep("builder", "Set up CI/CD pipeline and build configuration")
}

// CodeReview covers analysis, issue identification and improvement.
func CodeReview(name string) *Builder {
	return NewBuilder(name).
		Description("Code review and improvement workflow").
		AddStep("coder", "Analyze code quality and structure").
		AddStep("debugger", "Identify bugs and potential issues").
		AddStep("coder", "Suggest improvements and refactoring")
}

// Deployment covers build, configuration and roll-out.
func Deployment(name string) *Builder {
	return NewBuilder(name).
		Description("Application deployment workflow").
		AddStep("builder", "Run tests and build application").
		AddStep("builder", "Create deployment configuration").
		AddStep("builder", "Deploy to target environment")
}

// BugFix covers root-cause analysis, fixing and verification.
func BugFix(name string) *Builder {
	return NewBuilder(name).
		Description("Bug identification and fixing workflow").
		AddStep("debugger", "Analyze error and identify root cause").
		AddStep("coder", "Implement fix for the identified issue").
		AddStep("debugger", "Verify fix and test edge cases").
		AddStep("builder", "Update tests and documentation")
}
