package config

import (
	"fmt"

	"github.com/weldtool/weld/pkg/constants"
)

// WeldConfig describes a weld project: the deployment targets, the app and
// driver manifests, the library registry, and the constant table consumed by
// the preprocessor.
type WeldConfig struct {
	Targets   []string                     `json:"targets"`
	Apps      []string                     `json:"apps,omitempty"`
	Drivers   []string                     `json:"drivers,omitempty"`
	Libraries map[string]string            `json:"libraries,omitempty"`
	Constants map[string]map[string]string `json:"constants,omitempty"`
	OutputDir string                       `json:"output_dir,omitempty"`
}

func (c *WeldConfig) GetOutputDir() string {
	if c.OutputDir == "" {
		return constants.DefaultOutputDir
	}

	return c.OutputDir
}

// HasTarget reports whether name is one of the configured targets.
func (c *WeldConfig) HasTarget(name string) bool {
	for _, t := range c.Targets {
		if t == name {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of the configuration:
// at least one target, no duplicate targets, non-empty manifest and registry
// entries, and a value for every (constant, target) pair.
func (c *WeldConfig) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets defined")
	}

	seen := make(map[string]bool, len(c.Targets))
	for _, t := range c.Targets {
		if t == "" {
			return fmt.Errorf("empty target name")
		}
		if seen[t] {
			return fmt.Errorf("duplicate target %s", t)
		}
		seen[t] = true
	}

	for _, f := range c.Apps {
		if f == "" {
			return fmt.Errorf("empty app file name in manifest")
		}
	}
	for _, f := range c.Drivers {
		if f == "" {
			return fmt.Errorf("empty driver file name in manifest")
		}
	}

	for name, path := range c.Libraries {
		if name == "" {
			return fmt.Errorf("empty library name in registry")
		}
		if path == "" {
			return fmt.Errorf("library %s has no file path", name)
		}
	}

	// Every constant must resolve for every target; a missing pair would
	// otherwise surface mid-batch as a fatal lookup error.
	for name, values := range c.Constants {
		for _, t := range c.Targets {
			if _, ok := values[t]; !ok {
				return fmt.Errorf("constant %s has no value for target %s", name, t)
			}
		}
	}

	return nil
}
