package core

import (
	"github.com/weldtool/weld/internal/config"
	sdk "github.com/weldtool/weld/pkg/weld"
)

// Weld is a wrapper around the public SDK for internal use.
// This allows internal code to continue using the same API while
// the SDK remains available for external users.
type Weld struct {
	sdk *sdk.Weld
}

// New creates a new Weld instance by loading the configuration
func New() (*Weld, error) {
	s, err := sdk.New()
	if err != nil {
		return nil, err
	}

	return &Weld{sdk: s}, nil
}

// NewFromPath creates a new Weld instance from an explicit config file path
// or project directory
func NewFromPath(path string) (*Weld, error) {
	s, err := sdk.NewFromPath(path)
	if err != nil {
		return nil, err
	}

	return &Weld{sdk: s}, nil
}

// NewWithConfig creates a new Weld instance with the provided configuration
func NewWithConfig(cfg *config.WeldConfig) *Weld {
	sdkConfig := &sdk.Config{
		Targets:   cfg.Targets,
		Apps:      cfg.Apps,
		Drivers:   cfg.Drivers,
		Libraries: cfg.Libraries,
		Constants: cfg.Constants,
		OutputDir: cfg.OutputDir,
	}

	return &Weld{
		sdk: sdk.NewWithConfig(sdkConfig),
	}
}

// SDK returns the underlying SDK instance for direct access
func (w *Weld) SDK() *sdk.Weld {
	return w.sdk
}

// SaveConfig writes the current configuration to disk
func (w *Weld) SaveConfig() error {
	return w.sdk.SaveConfig()
}

// Validate checks the configuration invariants
func (w *Weld) Validate() error {
	return w.sdk.Validate()
}

// Targets returns the configured target names
func (w *Weld) Targets() []string {
	return w.sdk.Targets()
}

// HasTarget reports whether name is a configured target
func (w *Weld) HasTarget(name string) bool {
	return w.sdk.HasTarget(name)
}

// GetProjectRoot returns the project root directory (where weld.json is located)
func (w *Weld) GetProjectRoot() (string, error) {
	return w.sdk.GetProjectRoot()
}
