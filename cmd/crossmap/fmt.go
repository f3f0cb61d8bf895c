package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"crossmap/manifest"
)

// fmtCmd builds the fmt subcommand: load each manifest, normalize it, and
// re-marshal. With -w the source file is rewritten in place, otherwise the
// result goes to stdout.
func fmtCmd(logger *log.Logger) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <manifest>...",
		Short: "Rewrite mapping manifests in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				mf, err := manifest.LoadFile(path)
				if err != nil {
					return err
				}

				manifest.Normalize(mf)

				if write {
					if err := manifest.WriteFile(mf, path); err != nil {
						return err
					}

					logger.Info("rewrote manifest", "path", path)

					continue
				}

				data, err := manifest.Marshal(mf)
				if err != nil {
					return err
				}

				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false,
		"write the result back to the source file instead of stdout")

	return cmd
}
