package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

func newTreeCommand(ctx *commandContext) *cobra.Command {
	var idFlag, rootFlag string

	cmd := &cobra.Command{
		Use:   "tree <work-dir>",
		Short: "Print the browsable folder tree of one work directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensure(); err != nil {
				return err
			}

			workDir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			id, err := workIDFor(idFlag, workDir)
			if err != nil {
				return err
			}

			nodes, err := ctx.library().Tree(cmd.Context(), id, workDir, rootFlag)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), nodes)
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "Work ID override when the directory name has no code")
	cmd.Flags().StringVar(&rootFlag, "root", "main", "Root folder alias used for offload paths")

	return cmd
}
