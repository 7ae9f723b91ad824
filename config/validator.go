package config

import "fmt"

// Report is the outcome of a validation pass. Errors is nil when Valid.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func report(errs []string) Report {
	return Report{Valid: len(errs) == 0, Errors: errs}
}

// ValidateAgentConfig checks an agent configuration mapping against the
// recognized keys of the given agent type. Unknown agent types and unknown
// keys pass unchecked.
func ValidateAgentConfig(cfg map[string]any, agentType string) Report {
	if cfg == nil {
		return Report{Valid: false, Errors: []string{"configuration must be a mapping"}}
	}

	var errs []string
	switch agentType {
	case "coding":
		errs = validateCodingConfig(cfg)
	case "debugging":
		errs = validateDebuggingConfig(cfg)
	case "planning":
		errs = validatePlanningConfig(cfg)
	case "building":
		errs = validateBuildingConfig(cfg)
	}

	return report(errs)
}

func validateCodingConfig(cfg map[string]any) []string {
	var errs []string

	if raw, ok := cfg["languages"]; ok {
		langs, ok := asList(raw)
		if !ok {
			errs = append(errs, "'languages' must be a list")
		} else if !allStrings(langs) {
			errs = append(errs, "All languages must be strings")
		}
	}

	if raw, ok := cfg["style_guide"]; ok {
		if _, ok := raw.(string); !ok {
			errs = append(errs, "'style_guide' must be a string")
		}
	}

	return errs
}

func validateDebuggingConfig(cfg map[string]any) []string {
	var errs []string

	if raw, ok := cfg["strategies"]; ok {
		if _, ok := asList(raw); !ok {
			errs = append(errs, "'strategies' must be a list")
		}
	}

	if raw, ok := cfg["max_bugs_tracked"]; ok {
		if n, ok := asInt(raw); !ok || n < 0 {
			errs = append(errs, "'max_bugs_tracked' must be a non-negative integer")
		}
	}

	return errs
}

func validatePlanningConfig(cfg map[string]any) []string {
	var errs []string

	if raw, ok := cfg["methodology"]; ok {
		valid := map[any]bool{"agile": true, "waterfall": true, "kanban": true, "scrum": true}
		if !valid[raw] {
			errs = append(errs, "'methodology' must be one of: agile, waterfall, kanban, scrum")
		}
	}

	return errs
}

func validateBuildingConfig(cfg map[string]any) []string {
	var errs []string

	if raw, ok := cfg["build_tools"]; ok {
		if _, ok := asList(raw); !ok {
			errs = append(errs, "'build_tools' must be a list")
		}
	}

	if raw, ok := cfg["platforms"]; ok {
		if _, ok := asList(raw); !ok {
			errs = append(errs, "'platforms' must be a list")
		}
	}

	return errs
}

// ValidateFactoryConfig checks the factory and workflows sections of a
// top-level configuration mapping.
func ValidateFactoryConfig(cfg map[string]any) Report {
	if cfg == nil {
		return Report{Valid: false, Errors: []string{"configuration must be a mapping"}}
	}

	var errs []string

	if raw, ok := cfg["factory"]; ok {
		section, ok := asMapping(raw)
		if !ok {
			errs = append(errs, "'factory' section must be a mapping")
		} else if raw, ok := section["max_agents"]; ok {
			if n, ok := asInt(raw); !ok || n < 1 {
				errs = append(errs, "'max_agents' must be a positive integer")
			}
		}
	}

	if raw, ok := cfg["workflows"]; ok {
		section, ok := asMapping(raw)
		if !ok {
			errs = append(errs, "'workflows' section must be a mapping")
		} else if raw, ok := section["timeout_seconds"]; ok {
			if n, ok := asInt(raw); !ok || n < 1 {
				errs = append(errs, "'timeout_seconds' must be a positive integer")
			}
		}
	}

	return report(errs)
}

// ValidateWorkflowConfig checks the structural shape of a workflow mapping:
// a string name plus a list of steps each carrying agent and task fields.
func ValidateWorkflowConfig(workflow map[string]any) Report {
	if workflow == nil {
		return Report{Valid: false, Errors: []string{"workflow must be a mapping"}}
	}

	var errs []string

	if raw, ok := workflow["name"]; !ok {
		errs = append(errs, "workflow must have a 'name' field")
	} else if _, ok := raw.(string); !ok {
		errs = append(errs, "workflow 'name' must be a string")
	}

	if raw, ok := workflow["steps"]; !ok {
		errs = append(errs, "workflow must have a 'steps' field")
	} else if steps, ok := asList(raw); !ok {
		errs = append(errs, "workflow 'steps' must be a list")
	} else {
		for i, rawStep := range steps {
			step, ok := asMapping(rawStep)
			if !ok {
				errs = append(errs, fmt.Sprintf("step %d must be a mapping", i+1))
				continue
			}
			if _, ok := step["agent"]; !ok {
				errs = append(errs, fmt.Sprintf("step %d must have an 'agent' field", i+1))
			}
			if _, ok := step["task"]; !ok {
				errs = append(errs, fmt.Sprintf("step %d must have a 'task' field", i+1))
			}
		}
	}

	return report(errs)
}

// asList accepts the list shapes produced by JSON/YAML decoding and Go callers.
func asList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func allStrings(items []any) bool {
	for _, item := range items {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}

// asMapping accepts the mapping shapes produced by JSON/YAML decoding.
func asMapping(raw any) (map[string]any, bool) {
	m, ok := raw.(map[string]any)
	return m, ok
}

// asInt accepts the integer shapes produced by JSON (float64) and YAML (int)
// decoding as well as plain Go ints. Fractional floats are rejected.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
