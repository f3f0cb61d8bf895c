package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"crossmap/diagnostic"
	"crossmap/manifest"
)

// checkCmd builds the check subcommand: load and validate each manifest,
// report every finding, and fail when any manifest has errors.
func checkCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>...",
		Short: "Validate mapping manifests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			failed := 0

			for _, path := range args {
				logger.Debug("checking manifest", "path", path)

				mf, err := manifest.LoadFile(path)
				if err != nil {
					logger.Error(err.Error())
					failed++

					continue
				}

				diags := manifest.Validate(mf)
				reportFindings(logger, path, diags)

				if diags.HasErrors() {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d manifests failed validation", failed, len(args))
			}

			logger.Info("all manifests valid", "count", len(args))

			return nil
		},
	}
}

// reportFindings logs each finding at the level matching its severity.
func reportFindings(logger *log.Logger, path string, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.SeverityError:
			logger.Error(d.String(), "manifest", path)
		case diagnostic.SeverityWarning:
			logger.Warn(d.String(), "manifest", path)
		default:
			logger.Info(d.String(), "manifest", path)
		}
	}
}
