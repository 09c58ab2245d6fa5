package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"audioworks/internal/covers"
	"audioworks/internal/rjcode"
)

// coverInfo reports one stored cover rendition.
type coverInfo struct {
	Variant string `json:"variant"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
}

func newCoverCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover <work-id>",
		Short: "Print the cover image locations for one work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensure(); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			store, err := covers.NewStore(ctx.cfg.CoverFolderDir)
			if err != nil {
				return err
			}

			out := struct {
				Dir    string      `json:"dir"`
				Covers []coverInfo `json:"covers"`
			}{Dir: store.Dir()}
			for _, v := range rjcode.Variants {
				out.Covers = append(out.Covers, coverInfo{
					Variant: string(v),
					Name:    rjcode.CoverName(id, v),
					Path:    store.Path(id, v),
					Exists:  store.Exists(id, v),
				})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	return cmd
}
