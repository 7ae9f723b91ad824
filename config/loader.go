package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentforge/core"
)

// LoadFile loads a configuration mapping from a JSON or YAML file, selected
// by extension (.json, .yaml, .yml). It returns an error for missing files,
// unsupported extensions and documents whose top level is not a mapping.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".json":
		return LoadJSON(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", core.ErrInvalidInput, filepath.Ext(path))
	}
}

// LoadJSON decodes a JSON configuration document into a mapping.
func LoadJSON(data []byte) (map[string]any, error) {
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	return cfg, nil
}

// LoadYAML decodes a YAML configuration document into a mapping.
func LoadYAML(data []byte) (map[string]any, error) {
	var cfg map[string]any
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	return cfg, nil
}

// Save writes a configuration mapping to a file in the given format ("json",
// "yaml" or "yml"), creating parent directories as needed.
func Save(cfg map[string]any, path, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case "yaml", "yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: unsupported config format %q", core.ErrInvalidInput, format)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %q: %w", path, err)
	}

	return nil
}

// Default returns the documented default configuration tree.
func Default() map[string]any {
	return map[string]any{
		"factory": map[string]any{
			"name":       "AgentForge",
			"version":    "1.0.0",
			"max_agents": 100,
		},
		"agents": map[string]any{
			"coding": map[string]any{
				"languages":   []any{"Python", "JavaScript", "Java", "C++", "Go"},
				"style_guide": "default",
			},
			"debugging": map[string]any{
				"strategies":       []any{"print_debugging", "breakpoint_analysis", "log_analysis"},
				"max_bugs_tracked": 1000,
			},
			"planning": map[string]any{
				"methodology":        "agile",
				"default_complexity": "medium",
			},
			"building": map[string]any{
				"build_tools": []any{"Maven", "Gradle", "npm", "pip"},
				"platforms":   []any{"GitHub Actions", "Jenkins", "GitLab CI"},
			},
		},
		"workflows": map[string]any{
			"timeout_seconds":          3600,
			"max_concurrent_workflows": 10,
		},
	}
}
