// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(output, markers *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Description("Where generated TypeScript is written; leave empty for stdout").
				Placeholder("types.ts").
				Value(output),
			huh.NewInput().
				Title("Extra derive markers").
				Description("Comma-separated derive names accepted in addition to Serialize and Deserialize").
				Placeholder("JsonSchema, TypeDef").
				Value(markers),
		),
	).WithTheme(Theme()).Run()
}
