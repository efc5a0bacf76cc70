// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ProductionMode is the NODE_ENV value that selects a production build.
const ProductionMode = "production"

// ProcessEnv holds the process environment variables that select the build
// flavor.
type ProcessEnv struct {
	// NodeEnv is the build mode. Anything other than "production" is a
	// development build.
	// Env: NODE_ENV
	NodeEnv string `env:"NODE_ENV"`

	// Mode overrides NodeEnv when picking the .env.<mode> files.
	// Env: MODE
	Mode string `env:"MODE"`
}

// ParseProcessEnv maps environ onto a [ProcessEnv] using the caarlos0/env
// library. environ replaces the real process environment, which keeps the
// lookup testable.
func ParseProcessEnv(environ map[string]string) (*ProcessEnv, error) {
	cfg := &ProcessEnv{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessEnv, err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the environment selects a development build.
func (p *ProcessEnv) IsDevelopment() bool {
	return p.NodeEnv != ProductionMode
}

// DotEnvMode returns the suffix used for mode-specific .env files.
func (p *ProcessEnv) DotEnvMode() string {
	if p.Mode != "" {
		return p.Mode
	}
	return p.NodeEnv
}
