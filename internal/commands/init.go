// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicholasbishop/rsts/internal/config"
	"github.com/nicholasbishop/rsts/internal/prompts"
	"github.com/nicholasbishop/rsts/internal/session"
	"github.com/spf13/cobra"
)

type initOptions struct {
	output         string
	markers        string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an rsts project",
		Long: `Initialize an rsts project by writing an rsts.yaml configuration file
in the current directory. The config sets the default output file and any
extra derive markers the generate command should accept.`,
		Example: `  # Interactive mode
  rsts init

  # Non-interactive
  rsts init --output types.ts --markers JsonSchema --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Default output file (empty = stdout)")
	cmd.Flags().StringVarP(&opts.markers, "markers", "m", "", "Comma-separated extra derive markers")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("rsts.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.output, &opts.markers); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Output:  opts.output,
		Markers: splitMarkers(opts.markers),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	output := cfg.Output
	if output == "" {
		output = "(stdout)"
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Output", Value: output},
		{Label: "Extra markers", Value: strings.Join(cfg.Markers, ", ")},
	}, "Initialization completed")
	return nil
}

// splitMarkers parses a comma-separated marker list, dropping empty entries.
func splitMarkers(s string) []string {
	var markers []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			markers = append(markers, part)
		}
	}
	return markers
}
