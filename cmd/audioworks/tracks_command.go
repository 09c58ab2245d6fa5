package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"audioworks/internal/rjcode"
)

// workIDFor resolves a work ID from an explicit flag or the directory name.
func workIDFor(idFlag, workDir string) (string, error) {
	if idFlag != "" {
		return idFlag, nil
	}
	if id, ok := rjcode.Match(filepath.Base(workDir)); ok {
		return id, nil
	}
	return "", fmt.Errorf("directory %q carries no work code; pass --id", workDir)
}

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var idFlag string

	cmd := &cobra.Command{
		Use:   "tracks <work-dir>",
		Short: "Enumerate the ordered track list of one work directory",
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

			list, err := ctx.lister.List(cmd.Context(), id, workDir)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "Work ID override when the directory name has no code")

	return cmd
}
