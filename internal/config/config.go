package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileName is the project configuration file name
	FileName = "weld.json"

	maxConfigSearchLevels = 10 // Maximum number of parent directories to search
)

// FindConfigPath searches for the config file starting from current directory
// and traversing up parent directories until found or limits are reached
func FindConfigPath() (string, error) {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	currentDir := cwd
	for i := 0; i < maxConfigSearchLevels; i++ {
		configPath := filepath.Join(currentDir, FileName)

		// Check if config file exists
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Get parent directory
		parentDir := filepath.Dir(currentDir)

		// Check if we've reached the root
		if parentDir == currentDir {
			break
		}

		currentDir = parentDir
	}

	return "", fmt.Errorf("config file '%s' not found in current directory or any parent directories (searched up to %d levels)", FileName, maxConfigSearchLevels)
}

// FindProjectRoot returns the directory containing weld.json
func FindProjectRoot() (string, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// ResolveConfigPath interprets path as either a config file or a project
// directory containing one, and returns the absolute config file path.
func ResolveConfigPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", abs, err)
	}

	if info.IsDir() {
		return filepath.Join(abs, FileName), nil
	}
	return abs, nil
}

func ReadConfig() (*WeldConfig, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}

	return ReadConfigFile(configPath)
}

// ReadConfigFile reads and decodes a config file at an explicit path
func ReadConfigFile(configPath string) (*WeldConfig, error) {
	jsonFile, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", configPath, err)
	}
	defer jsonFile.Close()

	var weldConfig WeldConfig
	decoder := json.NewDecoder(jsonFile)
	if err := decoder.Decode(&weldConfig); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	return &weldConfig, nil
}

func WriteConfig(config *WeldConfig) error {
	// Write to project root, not CWD
	projectRoot, err := FindProjectRoot()
	if err != nil {
		// If no project root found, write to CWD (for new project creation)
		projectRoot = "."
	}

	return WriteConfigFile(filepath.Join(projectRoot, FileName), config)
}

// WriteConfigFile encodes the config to an explicit path
func WriteConfigFile(configPath string, config *WeldConfig) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", configPath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode %s: %w", configPath, err)
	}

	return nil
}
