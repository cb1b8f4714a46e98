package cli

import (
	"github.com/weldtool/weld/internal/logger"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the output directory",
	Run: func(cmd *cobra.Command, args []string) {
		w := MustGetWeld(cmd)
		if w == nil {
			logger.Fatal("No weld.json found in this directory or any parent")
		}

		if err := w.CleanOutputs(); err != nil {
			logger.Fatal("Failed to clean outputs", "error", err)
		}
	},
}
