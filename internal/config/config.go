// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package config handles the optional rsts.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the rsts.yaml project configuration file. Every field
// besides Version is optional; an absent config file means all defaults.
type Config struct {
	Version int `yaml:"version"`

	// Output is the default output file. Empty means stdout.
	Output string `yaml:"output,omitempty"`

	// Markers are derive names accepted in addition to Serialize and
	// Deserialize when deciding which structs to translate.
	Markers []string `yaml:"markers,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	for _, m := range c.Markers {
		if !validIdent(m) {
			return fmt.Errorf("invalid marker name: %q", m)
		}
	}
	return nil
}

// validIdent reports whether s is a plausible derive marker name.
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
