package cli

import (
	"fmt"
	"os"

	"github.com/weldtool/weld/internal/logger"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "weld",
	Short: "A preprocessor that bundles app, driver, and library fragments into deployable files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Handle logging configuration
		logLevel, _ := cmd.Flags().GetString("log-level")
		verbose, _ := cmd.Flags().GetBool("verbose")

		// Verbose flag overrides log-level
		if verbose {
			logger.SetVerbose(true)
		} else if logLevel != "" {
			logger.SetLogLevelString(logLevel)
		}

		// Initialize the project handle if a config exists.
		// Some commands (like init) will handle initialization themselves.
		_ = MustGetWeld(cmd)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Add global logging flags
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output (debug level)")
	RootCmd.PersistentFlags().String("log-level", "", "Set log level (debug, info, warn, error)")

	// Add global config flag
	RootCmd.PersistentFlags().StringP("config", "c", "", "Path to weld.json config file or project directory")

	// Register all subcommands
	RootCmd.AddCommand(
		buildCmd,
		checkCmd,
		cleanCmd,
		initCmd,
		targetsCmd,
	)
}
