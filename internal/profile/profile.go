// Package profile handles loading built-in and user-supplied severity
// weight profiles.
package profile

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Profile defines severity weight overrides and the label assigned to
// schema violations. Weights listed here are merged over the default
// table at aggregation time; absent severities keep their defaults.
type Profile struct {
	Name              string         `yaml:"name"`
	Version           int            `yaml:"version"`
	Description       string         `yaml:"description"`
	SeverityWeights   map[string]int `yaml:"severity_weights"`
	ViolationSeverity string         `yaml:"violation_severity"`
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: %q: %w", name, err)
	}
	return p, nil
}

// LoadFile loads a profile from a user-supplied YAML file.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %q: %w", path, err)
	}
	return p, nil
}

func parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for severity, weight := range p.SeverityWeights {
		if weight < 0 {
			return nil, fmt.Errorf("negative weight %d for severity %q", weight, severity)
		}
	}
	if p.ViolationSeverity == "" {
		p.ViolationSeverity = "high"
	}
	return &p, nil
}

// List returns the names of all available built-in profiles.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
