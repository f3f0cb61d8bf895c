// Package main provides the crossmap command line tool.
//
// crossmap works on declarative mapping manifests:
//   - check: structural validation of manifest files
//   - fmt: canonical rewrite of manifest files
//
// Typed validation (do the declared properties exist, do the paths
// resolve) happens when a manifest is applied against a type registry in
// code; the CLI covers everything that can be checked from the file alone.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	root := &cobra.Command{
		Use:   "crossmap",
		Short: "crossmap manages bidirectional field-mapping manifests",
		Long: "crossmap validates and formats the YAML manifests that declare\n" +
			"how fields of one type pair map onto each other.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(checkCmd(logger))
	root.AddCommand(fmtCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
