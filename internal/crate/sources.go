// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package crate

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Sources returns the crate's Rust source files relative to dir, in lexical
// order so repeated runs produce identical output.
func Sources(dir string) ([]string, error) {
	srcDir := filepath.Join(dir, "src")
	var files []string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".rs") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
