package cli

import (
	"github.com/weldtool/weld/internal/core"
	"github.com/spf13/cobra"
)

// GetWeld retrieves the project handle.
// Returns nil if the instance hasn't been initialized
func GetWeld(cmd *cobra.Command) *core.Weld {
	return globalWeld
}

// MustGetWeld retrieves the project handle or creates one if it doesn't exist
func MustGetWeld(cmd *cobra.Command) *core.Weld {
	if w := GetWeld(cmd); w != nil {
		return w
	}

	// An explicit --config path overrides the walk-up discovery
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")

	var w *core.Weld
	var err error
	if configPath != "" {
		w, err = core.NewFromPath(configPath)
	} else {
		w, err = core.New()
	}
	if err != nil {
		// Return nil - commands should handle this appropriately
		// Some commands (like init) don't need existing config
		return nil
	}

	globalWeld = w
	return w
}

// Global instance for simplicity (can be improved with proper context if needed)
var globalWeld *core.Weld
