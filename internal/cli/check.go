package cli

import (
	"github.com/weldtool/weld/internal/logger"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the project configuration and source files without writing output",
	Run: func(cmd *cobra.Command, args []string) {
		w := MustGetWeld(cmd)
		if w == nil {
			logger.Fatal("No weld.json found in this directory or any parent")
		}

		if root, err := w.GetProjectRoot(); err == nil {
			logger.Debug("Checking project", "root", root)
		}

		if err := w.Validate(); err != nil {
			logger.Fatal("Invalid configuration", "error", err)
		}

		if errs := w.CheckFiles(); len(errs) > 0 {
			for _, err := range errs {
				logger.Error("Missing file", "error", err)
			}
			logger.Fatal("Project check failed", "missing", len(errs))
		}

		cfg := w.SDK().Config()
		logger.Info("Project OK",
			"targets", len(cfg.Targets),
			"apps", len(cfg.Apps),
			"drivers", len(cfg.Drivers),
			"libraries", len(cfg.Libraries),
			"constants", len(cfg.Constants))
	},
}
