// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package crate reads just enough of a Rust crate's layout to translate it:
// the Cargo.toml package name and the list of source files under src/.
package crate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the name of the crate manifest file.
const ManifestFileName = "Cargo.toml"

// Manifest is the subset of Cargo.toml the translator needs.
type Manifest struct {
	Package Package `toml:"package"`
}

// Package is the [package] table of a crate manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// LoadManifest reads the Cargo.toml of the crate rooted at dir.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName)) //nolint:gosec // dir is provided by caller
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%s has no package name", ManifestFileName)
	}
	return &m, nil
}
