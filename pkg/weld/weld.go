// Package weld provides a Go SDK for preprocessing and bundling Hubitat-style
// Groovy app, driver, and library fragments into deployable files.
//
// This package allows you to programmatically interact with weld projects and
// run the preprocessor without using the CLI.
//
// Example usage:
//
//	import "github.com/weldtool/weld/pkg/weld"
//
//	// Load an existing project
//	w, err := weld.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Process every app and driver for one target
//	count, err := w.ProcessAll("COCOHUE", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("processed", count, "files")
package weld

import (
	"fmt"
	"path/filepath"

	"github.com/weldtool/weld/internal/config"
	"github.com/weldtool/weld/pkg/constants"
)

// Weld represents the main SDK instance for a fragment-bundling project.
// It encapsulates the project configuration and provides methods for
// preprocessing, validation, and path resolution.
type Weld struct {
	config *config.WeldConfig

	// root is the project root (the directory holding weld.json). All
	// source, library, and output paths are resolved against it, so the
	// tool works from any subdirectory the config discovery reaches.
	// Empty for instances built with NewWithConfig, which resolve against
	// the current directory.
	root string
}

// JobKind distinguishes the two kinds of manifest entries.
type JobKind string

const (
	JobApp    JobKind = "app"
	JobDriver JobKind = "driver"
)

// Job is one manifest entry: a source fragment to preprocess and the
// destination file its output is written to.
type Job struct {
	Kind   JobKind
	Source string
	Dest   string
}

// Config represents the weld project configuration.
type Config struct {
	Targets   []string                     `json:"targets"`
	Apps      []string                     `json:"apps,omitempty"`
	Drivers   []string                     `json:"drivers,omitempty"`
	Libraries map[string]string            `json:"libraries,omitempty"`
	Constants map[string]map[string]string `json:"constants,omitempty"`
	OutputDir string                       `json:"output_dir,omitempty"`
}

// New creates a new Weld SDK instance by loading the configuration found by
// walking up from the current directory. Returns an error if the configuration
// file doesn't exist or is invalid. Paths are anchored at the directory the
// config was found in.
func New() (*Weld, error) {
	configPath, err := config.FindConfigPath()
	if err != nil {
		return nil, err
	}

	return newFromConfigPath(configPath)
}

// NewFromPath creates a new Weld SDK instance from an explicit config file
// path, or from a project directory containing weld.json.
func NewFromPath(path string) (*Weld, error) {
	configPath, err := config.ResolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	return newFromConfigPath(configPath)
}

func newFromConfigPath(configPath string) (*Weld, error) {
	cfg, err := config.ReadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Weld{
		config: cfg,
		root:   filepath.Dir(configPath),
	}, nil
}

// NewWithConfig creates a new Weld SDK instance with the provided
// configuration. This is useful for creating projects programmatically or for
// testing. Paths resolve against the current directory.
func NewWithConfig(cfg *Config) *Weld {
	return &Weld{
		config: toInternalConfig(cfg),
	}
}

// Config returns a copy of the current configuration.
func (w *Weld) Config() *Config {
	return fromInternalConfig(w.config)
}

// SaveConfig writes the current configuration to disk.
func (w *Weld) SaveConfig() error {
	if w.root != "" {
		return config.WriteConfigFile(filepath.Join(w.root, config.FileName), w.config)
	}
	return config.WriteConfig(w.config)
}

// Validate checks the configuration invariants (targets present, every
// constant resolvable for every target, registry entries well formed).
func (w *Weld) Validate() error {
	return w.config.Validate()
}

// GetProjectRoot returns the project root directory (where weld.json is located).
func (w *Weld) GetProjectRoot() (string, error) {
	if w.root != "" {
		return w.root, nil
	}
	return config.FindProjectRoot()
}

// Targets returns the configured target names, in declaration order.
func (w *Weld) Targets() []string {
	targets := make([]string, len(w.config.Targets))
	copy(targets, w.config.Targets)
	return targets
}

// HasTarget reports whether name is a configured target.
func (w *Weld) HasTarget(name string) bool {
	return w.config.HasTarget(name)
}

// GetOutputDir returns the output directory, anchored at the project root.
func (w *Weld) GetOutputDir() string {
	return filepath.Join(w.root, w.config.GetOutputDir())
}

// Path Operations
//
// All paths are anchored at the project root when the instance was loaded
// from a discovered config file.

// AppPath returns the filesystem path of an app source fragment.
func (w *Weld) AppPath(fileName string) string {
	return filepath.Join(w.root, constants.AppDir, fileName)
}

// DriverPath returns the filesystem path of a driver source fragment.
func (w *Weld) DriverPath(fileName string) string {
	return filepath.Join(w.root, constants.DriverDir, fileName)
}

// LibraryPath returns the filesystem path of a registered library fragment.
// Returns an error if the name is absent from the registry.
func (w *Weld) LibraryPath(libName string) (string, error) {
	fileName, ok := w.config.Libraries[libName]
	if !ok {
		return "", fmt.Errorf("library %s is not registered", libName)
	}
	return filepath.Join(w.root, constants.LibraryDir, fileName), nil
}

// OutputPath returns the destination path for a source fragment's output:
// the output directory plus the source's base name.
func (w *Weld) OutputPath(fileName string) string {
	return filepath.Join(w.GetOutputDir(), filepath.Base(fileName))
}

// Jobs returns the ordered manifest: every app entry followed by every driver
// entry, each paired with its computed destination.
func (w *Weld) Jobs() []Job {
	return append(w.appJobs(), w.driverJobs()...)
}

// Internal conversion functions

func toInternalConfig(cfg *Config) *config.WeldConfig {
	return &config.WeldConfig{
		Targets:   cfg.Targets,
		Apps:      cfg.Apps,
		Drivers:   cfg.Drivers,
		Libraries: cfg.Libraries,
		Constants: cfg.Constants,
		OutputDir: cfg.OutputDir,
	}
}

func fromInternalConfig(cfg *config.WeldConfig) *Config {
	return &Config{
		Targets:   cfg.Targets,
		Apps:      cfg.Apps,
		Drivers:   cfg.Drivers,
		Libraries: cfg.Libraries,
		Constants: cfg.Constants,
		OutputDir: cfg.OutputDir,
	}
}
