package cli

import (
	"fmt"
	"strings"

	"github.com/weldtool/weld/internal/logger"
	sdk "github.com/weldtool/weld/pkg/weld"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [TARGET]",
	Short: "Preprocess every app and driver in the manifest for a target",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		w := MustGetWeld(cmd)
		if w == nil {
			logger.Fatal("No weld.json found in this directory or any parent")
		}

		// No argument or an unknown target name: print the valid names
		// and do no file I/O.
		if len(args) == 0 {
			fmt.Printf("No target specified. Possible targets: %s\n", strings.Join(w.Targets(), ", "))
			return
		}

		target := strings.TrimSpace(args[0])
		if !w.HasTarget(target) {
			fmt.Printf("Invalid target specified: %s. Should be one of: %s\n", target, strings.Join(w.Targets(), ", "))
			return
		}

		rawLibraries, _ := cmd.Flags().GetBool("raw-libraries")
		opts := &sdk.Options{
			RawLibraries: rawLibraries,
		}

		logger.Info("Processing for target", "target", target)
		count, err := w.SDK().ProcessAll(target, opts)
		if err != nil {
			logger.Fatal("Processing failed", "error", err)
		}

		logger.Info("Done", "total", count)
	},
}

func init() {
	buildCmd.Flags().Bool("raw-libraries", false, "Copy library fragments through without preprocessing")
}
