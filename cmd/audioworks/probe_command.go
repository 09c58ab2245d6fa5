package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <media-file>",
		Short: "Probe one media file for its playable duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensure(); err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			seconds := ctx.prober.Duration(cmd.Context(), path)
			if math.IsNaN(seconds) {
				return fmt.Errorf("duration of %s is unknown", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", seconds)
			return nil
		},
	}

	return cmd
}
