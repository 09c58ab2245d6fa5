package main

import (
	"github.com/spf13/cobra"

	"audioworks/internal/metrics"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var includeTracks bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan every configured root folder and report discovered works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensure(); err != nil {
				return err
			}

			if addr := ctx.cfg.MetricsAddr; addr != "" {
				srv := metrics.Serve(addr)
				defer srv.Close()
			}

			lib := ctx.library()
			lib.IncludeTracks = includeTracks

			report, err := lib.Scan(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().BoolVar(&includeTracks, "include-tracks", false, "Embed full track lists in the report")

	return cmd
}
