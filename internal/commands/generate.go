// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nicholasbishop/rsts/internal/crate"
	"github.com/nicholasbishop/rsts/internal/prompts"
	"github.com/nicholasbishop/rsts/internal/rustsyn"
	"github.com/nicholasbishop/rsts/internal/session"
	"github.com/nicholasbishop/rsts/internal/translate"
	"github.com/nicholasbishop/rsts/internal/translate/typescript"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	output   string
	crateDir string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [file.rs ...]",
		Short: "Translate Rust type declarations to TypeScript",
		Long: `Translate the struct and enum declarations of one or more Rust source
files into TypeScript. Output goes to stdout unless --output is given;
fields whose types cannot be translated are skipped with a warning on
stderr.`,
		Example: `  # Translate two files to stdout
  rsts generate src/types.rs src/api.rs

  # Translate every source file of a crate into one .ts file
  rsts generate --crate path/to/crate --output types.ts`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(sess, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.crateDir, "crate", "", "Translate every source file under a crate directory's src/")

	return cmd
}

// generateInput is one file to translate: where to read it and how to label
// it in the generated output.
type generateInput struct {
	path    string
	display string
}

func runGenerate(sess *session.Context, opts *generateOptions, args []string, stdout, stderr io.Writer) error {
	inputs := make([]generateInput, 0, len(args))
	for _, arg := range args {
		inputs = append(inputs, generateInput{path: arg, display: filepath.Base(arg)})
	}

	if opts.crateDir != "" {
		crateInputs, err := collectCrateInputs(opts.crateDir)
		if err != nil {
			return err
		}
		inputs = append(inputs, crateInputs...)
	}

	if len(inputs) == 0 {
		return errors.New("at least one input file (or --crate) is required")
	}

	markers := append([]string{}, translate.DefaultMarkers...)
	output := opts.output
	if cfg := sess.Config; cfg != nil {
		markers = append(markers, cfg.Markers...)
		if output == "" {
			output = cfg.Output
		}
	}

	out := stdout
	if output != "" {
		f, err := os.Create(output) //nolint:gosec // output is provided by caller
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		out = f
	}

	ts := &typescript.Translator{}
	if err := ts.WritePreamble(out); err != nil {
		return err
	}

	for _, in := range inputs {
		src, err := os.ReadFile(in.path) //nolint:gosec // paths are provided by caller
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", in.path, err)
		}
		parsed, err := rustsyn.ParseFile(in.display, string(src))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", in.path, err)
		}

		file, skipped := translate.FromFile(parsed, markers)
		for _, s := range skipped {
			field := s.Field
			if field == "" {
				field = "(unnamed)"
			}
			prompts.Warnf(stderr, "%s: skipped field %s.%s: %v", in.display, s.Record, field, s.Err)
		}

		if err := ts.WriteFile(out, file); err != nil {
			return err
		}
	}
	return nil
}

// collectCrateInputs enumerates a crate's source files, labeling each with
// the package name from Cargo.toml.
func collectCrateInputs(dir string) ([]generateInput, error) {
	manifest, err := crate.LoadManifest(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read crate manifest: %w", err)
	}
	sources, err := crate.Sources(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list crate sources: %w", err)
	}

	inputs := make([]generateInput, 0, len(sources))
	for _, src := range sources {
		inputs = append(inputs, generateInput{
			path:    filepath.Join(dir, src),
			display: manifest.Package.Name + "/" + filepath.ToSlash(src),
		})
	}
	return inputs, nil
}
