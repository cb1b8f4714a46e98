package core

import (
	"fmt"
	"os"

	"github.com/weldtool/weld/internal/config"
	"github.com/weldtool/weld/internal/logger"
	"github.com/weldtool/weld/pkg/constants"
)

// InitializeProject creates a new weld project structure in the current
// directory: the apps/drivers/libraries source directories and a starter
// weld.json with a single target.
func InitializeProject(targetName string) (*Weld, error) {
	if targetName == "" {
		targetName = constants.DefaultTargetName
	}

	logger.Debug("Creating apps directory")
	if err := os.MkdirAll(constants.AppDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create apps directory: %w", err)
	}

	logger.Debug("Creating drivers directory")
	if err := os.MkdirAll(constants.DriverDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create drivers directory: %w", err)
	}

	logger.Debug("Creating libraries directory")
	if err := os.MkdirAll(constants.LibraryDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create libraries directory: %w", err)
	}

	// Create default configuration
	logger.Debug("Creating default configuration")
	cfg := &config.WeldConfig{
		Targets:   []string{targetName},
		Apps:      []string{},
		Drivers:   []string{},
		Libraries: map[string]string{},
		Constants: map[string]map[string]string{},
	}

	logger.Debug("Writing configuration file")
	if err := config.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}

	return NewWithConfig(cfg), nil
}

// CleanOutputs removes the output directory and everything under it.
func (w *Weld) CleanOutputs() error {
	outputDir := w.sdk.GetOutputDir()
	logger.Debug("Removing output directory", "dir", outputDir)

	if err := os.RemoveAll(outputDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove output directory: %w", err)
	}

	logger.Info("Outputs cleaned successfully")
	return nil
}

// CheckFiles verifies that every app, driver, and library file named by the
// configuration exists on disk. It returns one error per missing file.
func (w *Weld) CheckFiles() []error {
	var errs []error

	for _, job := range w.sdk.Jobs() {
		if _, err := os.Stat(job.Source); err != nil {
			errs = append(errs, fmt.Errorf("%s source missing: %s", job.Kind, job.Source))
		}
	}

	cfg := w.sdk.Config()
	for libName := range cfg.Libraries {
		libPath, err := w.sdk.LibraryPath(libName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := os.Stat(libPath); err != nil {
			errs = append(errs, fmt.Errorf("library file missing: %s", libPath))
		}
	}

	return errs
}
