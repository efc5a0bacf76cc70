// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-webpack-config/models"
)

// AppConfigFileNames lists the project file names probed at the root, in
// order. The first one that exists is loaded.
var AppConfigFileNames = []string{
	"app.config.json",
	"app.config.yaml",
	"app.config.yml",
	"app.config.js",
}

var (
	commonJSExport = []byte("module.exports")
	esModuleExport = []byte("export default")
)

func findAppConfigFile(rootPath string) (string, bool, error) {
	for _, name := range AppConfigFileNames {
		path := filepath.Join(rootPath, name)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("%w: %s: %w", ErrConfigFileLoad, path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, true, nil
	}

	return "", false, nil
}

// parseAppConfigFile decodes a project file. JSON is a subset of YAML, so a
// single yaml.v3 decoder handles both. A .js file is accepted only as a data
// module: its export prefix is stripped and the object literal is decoded as
// a YAML flow mapping. Nothing is evaluated.
func parseAppConfigFile(path string) (*models.AppConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileLoad, path, err)
	}

	if filepath.Ext(path) == ".js" {
		data = stripDataModule(normalizeObjectLiteral(data))
		if err := checkDataModuleKeys(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileLoad, path, err)
		}
	}

	cfg := &models.AppConfiguration{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileLoad, path, err)
	}

	return cfg, nil
}

// stripDataModule turns
//
//	// comment
//	module.exports = { outputDir: "build" };
//
// into the bare object literal.
func stripDataModule(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			continue
		}
		kept = append(kept, line)
	}

	body := bytes.TrimSpace(bytes.Join(kept, []byte("\n")))
	switch {
	case bytes.HasPrefix(body, commonJSExport):
		body = bytes.TrimSpace(bytes.TrimPrefix(body, commonJSExport))
		body = bytes.TrimSpace(bytes.TrimPrefix(body, []byte("=")))
	case bytes.HasPrefix(body, esModuleExport):
		body = bytes.TrimSpace(bytes.TrimPrefix(body, esModuleExport))
	}

	return bytes.TrimSpace(bytes.TrimSuffix(body, []byte(";")))
}

// normalizeObjectLiteral rewrites the parts of an object literal that YAML
// flow syntax reads differently: a value glued to its colon ({a:"b"}) gets a
// separating space and // or /* */ comments are dropped. String literals are
// copied untouched.
func normalizeObjectLiteral(src []byte) []byte {
	out := make([]byte, 0, len(src)+16)
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]

		if quote != 0 {
			out = append(out, c)
			switch {
			case c == '\\' && i+1 < len(src):
				i++
				out = append(out, src[i])
			case c == quote:
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'':
			quote = c
			out = append(out, c)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				return append(out, src[i:]...)
			}
			i += end + 3
			out = append(out, ' ')
		case c == ':':
			out = append(out, c)
			if i+1 < len(src) && !isSpace(src[i+1]) {
				out = append(out, ' ')
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// checkDataModuleKeys fails on top-level entries that decode without a value.
// In a data module that only happens when an entry was not understood, and
// silently falling back to defaults would hide it.
func checkDataModuleKeys(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if doc[key] == nil || strings.Contains(key, ":") {
			return fmt.Errorf("entry %q has no value", key)
		}
	}
	return nil
}
