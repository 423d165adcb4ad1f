// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsts.yaml")
	cfg := &Config{
		Version: CurrentConfigVersion,
		Output:  "types.ts",
		Markers: []string{"JsonSchema"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "rsts.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [not an int"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid minimal",
			cfg:  Config{Version: CurrentConfigVersion},
		},
		{
			name: "valid with markers",
			cfg:  Config{Version: CurrentConfigVersion, Markers: []string{"JsonSchema", "_Private"}},
		},
		{
			name:    "wrong version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "empty marker",
			cfg:     Config{Version: CurrentConfigVersion, Markers: []string{""}},
			wantErr: "invalid marker name",
		},
		{
			name:    "marker with spaces",
			cfg:     Config{Version: CurrentConfigVersion, Markers: []string{"not a name"}},
			wantErr: "invalid marker name",
		},
		{
			name:    "marker starting with digit",
			cfg:     Config{Version: CurrentConfigVersion, Markers: []string{"1Bad"}},
			wantErr: "invalid marker name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
