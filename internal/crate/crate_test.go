// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package crate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), `
[package]
name = "my-crate"
version = "0.3.1"
edition = "2021"

[dependencies]
serde = { version = "1", features = ["derive"] }
`)

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "my-crate", m.Package.Name)
	assert.Equal(t, "0.3.1", m.Package.Version)
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	assert.Error(t, err)
}

func TestLoadManifestWithoutName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nversion = \"0.1.0\"\n")

	_, err := LoadManifest(dir)
	assert.ErrorContains(t, err, "no package name")
}

func TestSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "main.rs"), "fn main() {}")
	writeFile(t, filepath.Join(dir, "src", "api", "types.rs"), "struct X;")
	writeFile(t, filepath.Join(dir, "src", "lib.rs"), "")
	writeFile(t, filepath.Join(dir, "src", "notes.md"), "not rust")
	writeFile(t, filepath.Join(dir, "README.md"), "not under src")

	files, err := Sources(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("src", "api", "types.rs"),
		filepath.Join("src", "lib.rs"),
		filepath.Join("src", "main.rs"),
	}, files)
}

func TestSourcesMissingSrcDir(t *testing.T) {
	_, err := Sources(t.TempDir())
	assert.Error(t, err)
}
