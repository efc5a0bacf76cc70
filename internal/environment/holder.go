// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-webpack-config/internal/config"
	"github.com/MKhiriev/go-webpack-config/internal/logger"
)

// Reserved RawEnv keys, always present in a snapshot.
const (
	KeyNodeEnv   = "NODE_ENV"
	KeyBuildTime = "BUILD_TIME"
	KeyPublicURL = "PUBLIC_URL"
)

// ProcessEnvKey is the single key of a [StringifiedEnv].
const ProcessEnvKey = "process.env"

// BuildTimeLayout renders BUILD_TIME the way en-US locales print a local
// date-time, e.g. "10/14/2026, 3:04:05 PM".
const BuildTimeLayout = "1/2/2006, 3:04:05 PM"

var appKeyPattern = regexp.MustCompile(`(?i)^APP_`)

// RawEnv maps variable names to their plain values.
type RawEnv map[string]string

// StringifiedEnv holds RawEnv under [ProcessEnvKey] with every value JSON
// encoded, ready for compile-time substitution.
type StringifiedEnv map[string]map[string]string

// PublicPathProvider supplies the public path the PUBLIC_URL variable is
// derived from.
type PublicPathProvider interface {
	PublicPath() string
}

// Holder is an immutable snapshot of the build environment taken at
// construction time.
type Holder struct {
	raw         RawEnv
	stringified StringifiedEnv
	loaded      []string
}

type holderOptions struct {
	now func() time.Time
	log *logger.Logger
}

// HolderOption customises [NewHolder].
type HolderOption func(*holderOptions)

// WithClock replaces the clock used for BUILD_TIME.
func WithClock(now func() time.Time) HolderOption {
	return func(o *holderOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger receiving load events.
func WithLogger(log *logger.Logger) HolderOption {
	return func(o *holderOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// NewHolder loads the layered .env files of rootPath into environ and takes
// the snapshot. The mode suffix is MODE, falling back to NODE_ENV.
//
// Later changes to environ are not reflected in the returned Holder.
func NewHolder(environ Environment, rootPath string, app PublicPathProvider, opts ...HolderOption) (*Holder, error) {
	o := holderOptions{now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	procEnv, err := config.ParseProcessEnv(environ.Environ())
	if err != nil {
		return nil, err
	}

	mode := procEnv.DotEnvMode()
	loaded, err := LoadDotEnv(environ, rootPath, mode, o.log)
	if err != nil {
		return nil, err
	}

	raw := buildRaw(environ.Environ(), app.PublicPath(), o.now())
	stringified, err := stringify(raw)
	if err != nil {
		return nil, err
	}

	o.log.Debug().Str("mode", mode).Strs("files", loaded).Int("vars", len(raw)).Msg("environment snapshot taken")

	return &Holder{raw: raw, stringified: stringified, loaded: loaded}, nil
}

// Raw returns a copy of the snapshot.
func (h *Holder) Raw() RawEnv {
	return maps.Clone(h.raw)
}

// Stringified returns a copy of the JSON-encoded snapshot.
func (h *Holder) Stringified() StringifiedEnv {
	return StringifiedEnv{ProcessEnvKey: maps.Clone(h.stringified[ProcessEnvKey])}
}

// LoadedFiles returns the .env files that were read, in load order.
func (h *Holder) LoadedFiles() []string {
	return append([]string(nil), h.loaded...)
}

func buildRaw(environ map[string]string, publicPath string, now time.Time) RawEnv {
	nodeEnv := environ[KeyNodeEnv]
	if nodeEnv == "" {
		nodeEnv = config.ProductionMode
	}

	raw := RawEnv{
		KeyNodeEnv:   nodeEnv,
		KeyBuildTime: now.Local().Format(BuildTimeLayout),
		KeyPublicURL: strings.TrimSuffix(publicPath, "/"),
	}
	for key, value := range environ {
		if appKeyPattern.MatchString(key) {
			raw[key] = value
		}
	}
	return raw
}

func stringify(raw RawEnv) (StringifiedEnv, error) {
	encoded := make(map[string]string, len(raw))
	for key, value := range raw {
		v, err := jsonString(value)
		if err != nil {
			return nil, fmt.Errorf("error encoding %s: %w", key, err)
		}
		encoded[key] = v
	}
	return StringifiedEnv{ProcessEnvKey: encoded}, nil
}

// jsonString encodes s as a JSON string literal without HTML escaping. The
// result evaluates to the same string as JSON.stringify output, but the bytes
// can differ: U+2028 and U+2029 are escaped and invalid UTF-8 becomes \ufffd.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
