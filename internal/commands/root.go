// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rsts",
		Short: "Convert Rust types to TypeScript",
		Long: `rsts translates Rust struct and enum declarations into equivalent
TypeScript interfaces and type aliases. Structs must derive Serialize or
Deserialize to be translated; enums are always translated.`,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
