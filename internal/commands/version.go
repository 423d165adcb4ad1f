// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package commands

import (
	"fmt"

	"github.com/nicholasbishop/rsts/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
