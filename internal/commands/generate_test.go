// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nicholasbishop/rsts/internal/config"
	"github.com/nicholasbishop/rsts/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunGenerateSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "types.rs", `
#[derive(Serialize)]
struct Point { x: f64, y: f64 }
`)

	var stdout, stderr bytes.Buffer
	err := runGenerate(&session.Context{}, &generateOptions{}, []string{path}, &stdout, &stderr)
	require.NoError(t, err)

	want := "export type DateTimeUtc = string;\n" +
		"// types.rs\n" +
		"export interface Point {\n  x: number;\n  y: number;\n}\n"
	assert.Equal(t, want, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunGenerateMultipleFilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.rs", "#[derive(Serialize)]\nstruct A { v: u8 }\n")
	b := writeSource(t, dir, "b.rs", "#[derive(Serialize)]\nstruct B { v: u8 }\n")

	var stdout, stderr bytes.Buffer
	err := runGenerate(&session.Context{}, &generateOptions{}, []string{b, a}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("// b.rs")), bytes.Index(stdout.Bytes(), []byte("// a.rs")), out)
}

func TestRunGenerateWarnsOnSkippedField(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "types.rs", `
#[derive(Serialize)]
struct Mixed {
    good: String,
    bad: &'static str,
}
`)

	var stdout, stderr bytes.Buffer
	err := runGenerate(&session.Context{}, &generateOptions{}, []string{path}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "good: string;")
	assert.NotContains(t, stdout.String(), "bad")
	assert.Contains(t, stderr.String(), "skipped field Mixed.bad")
}

func TestRunGenerateNoInputs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runGenerate(&session.Context{}, &generateOptions{}, nil, &stdout, &stderr)
	assert.ErrorContains(t, err, "at least one input file")
}

func TestRunGenerateUnparsableFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "broken.rs", "struct Broken {")

	var stdout, stderr bytes.Buffer
	err := runGenerate(&session.Context{}, &generateOptions{}, []string{path}, &stdout, &stderr)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestRunGenerateEmptyRecordIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "types.rs", `
#[derive(Serialize)]
struct NoFields { only: &'static str }
`)

	var stdout, stderr bytes.Buffer
	err := runGenerate(&session.Context{}, &generateOptions{}, []string{path}, &stdout, &stderr)
	assert.ErrorContains(t, err, "no translatable fields")
}

func TestRunGenerateOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "types.rs", "#[derive(Serialize)]\nstruct S { v: u8 }\n")
	outPath := filepath.Join(dir, "types.ts")

	var stdout, stderr bytes.Buffer
	opts := &generateOptions{output: outPath}
	err := runGenerate(&session.Context{}, opts, []string{path}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "export interface S {")
}

func TestRunGenerateCrateMode(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n")
	writeSource(t, dir, filepath.Join("src", "lib.rs"), "#[derive(Serialize)]\nstruct Item { id: u64 }\n")
	writeSource(t, dir, filepath.Join("src", "util.rs"), "fn helper() {}\n")

	var stdout, stderr bytes.Buffer
	opts := &generateOptions{crateDir: dir}
	err := runGenerate(&session.Context{}, opts, nil, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "// demo/src/lib.rs")
	assert.Contains(t, stdout.String(), "// demo/src/util.rs")
	assert.Contains(t, stdout.String(), "export interface Item {")
}

func TestRunGenerateConfigMarkersExtendDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "types.rs", `
#[derive(JsonSchema)]
struct Extra { v: u8 }

#[derive(Serialize)]
struct Core { v: u8 }
`)

	sess := &session.Context{Config: &config.Config{
		Version: config.CurrentConfigVersion,
		Markers: []string{"JsonSchema"},
	}}
	var stdout, stderr bytes.Buffer
	err := runGenerate(sess, &generateOptions{}, []string{path}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "export interface Extra {")
	assert.Contains(t, stdout.String(), "export interface Core {")
}

func TestRunGenerateConfigOutputUsedWhenFlagAbsent(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "types.rs", "#[derive(Serialize)]\nstruct S { v: u8 }\n")
	outPath := filepath.Join(dir, "from-config.ts")

	sess := &session.Context{Config: &config.Config{
		Version: config.CurrentConfigVersion,
		Output:  outPath,
	}}
	var stdout, stderr bytes.Buffer
	err := runGenerate(sess, &generateOptions{}, []string{path}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
	assert.FileExists(t, outPath)
}
