package cli

import (
	"github.com/weldtool/weld/internal/core"
	"github.com/weldtool/weld/internal/logger"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [TARGET]",
	Short: "Create a new weld project in the current directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		targetName := ""
		if len(args) > 0 {
			targetName = args[0]
		}

		w, err := core.InitializeProject(targetName)
		if err != nil {
			logger.Fatal("Failed to initialize project", "error", err)
		}

		globalWeld = w
		logger.Info("Project initialized", "targets", w.Targets())
	},
}
