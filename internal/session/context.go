// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicholasbishop/rsts/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigFileName is the name of the rsts configuration file.
const ConfigFileName = "rsts.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration for one command run.
type Context struct {
	// Config is the loaded rsts.yaml, or nil when the working directory has
	// no configuration file. A missing file is not an error; all defaults
	// apply.
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the rsts Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	sess := &Context{}
	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		sess.Config = cfg
	}

	return context.WithValue(ctx, contextKey{}, sess), nil
}

// From extracts the rsts Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}
