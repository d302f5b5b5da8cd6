// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noldarim/portfolio/internal/content"
)

func newContentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect portfolio content",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a content YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d sections, %d skill categories, %d projects\n",
				args[0], len(c.Navigation), len(c.Skills), len(c.Projects))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the active content as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := content.NewStore(a.cfg.Content.Path)
			if err != nil {
				return err
			}
			data, err := content.Marshal(store.Snapshot())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}
