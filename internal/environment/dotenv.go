// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-webpack-config/internal/logger"
)

const dotEnvFile = ".env"

// DotEnvFiles returns the candidate .env files for mode, highest precedence
// first:
//
//	.env.<mode>.local
//	.env.<mode>
//	.env.local
//	.env
//
// The mode-specific names are left out when mode is empty.
func DotEnvFiles(rootPath, mode string) []string {
	base := filepath.Join(rootPath, dotEnvFile)

	files := make([]string, 0, 4)
	if mode != "" {
		files = append(files, base+"."+mode+".local", base+"."+mode)
	}
	return append(files, base+".local", base)
}

// LoadDotEnv reads every existing candidate file for mode into environ.
// A variable is only written when environ does not define it yet, so the
// earlier (more specific) files and the real environment win.
//
// It returns the files that were loaded, in load order. Missing files are
// skipped silently; a file that exists but cannot be parsed fails with
// [ErrDotEnvParse].
func LoadDotEnv(environ Environment, rootPath, mode string, log *logger.Logger) ([]string, error) {
	if log == nil {
		log = logger.Nop()
	}

	var loaded []string
	for _, file := range DotEnvFiles(rootPath, mode) {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return loaded, fmt.Errorf("%w: %s: %w", ErrDotEnvParse, file, err)
		}

		vars, err := godotenv.Read(file)
		if err != nil {
			return loaded, fmt.Errorf("%w: %s: %w", ErrDotEnvParse, file, err)
		}

		applied, err := apply(environ, vars)
		if err != nil {
			return loaded, err
		}

		log.Debug().Str("file", file).Int("vars", len(vars)).Int("applied", applied).Msg("loaded dot-env file")
		loaded = append(loaded, file)
	}

	return loaded, nil
}

func apply(environ Environment, vars map[string]string) (int, error) {
	applied := 0
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if _, defined := environ.Lookup(key); defined {
			continue
		}
		if err := environ.Set(key, vars[key]); err != nil {
			return applied, fmt.Errorf("%w: %s: %w", ErrDotEnvApply, key, err)
		}
		applied++
	}
	return applied, nil
}
