package cli

import (
	"fmt"

	"github.com/weldtool/weld/internal/logger"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the configured target names",
	Run: func(cmd *cobra.Command, args []string) {
		w := MustGetWeld(cmd)
		if w == nil {
			logger.Fatal("No weld.json found in this directory or any parent")
		}

		for _, t := range w.Targets() {
			fmt.Println(t)
		}
	},
}
