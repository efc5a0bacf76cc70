// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-webpack-config/internal/config"
	"github.com/MKhiriev/go-webpack-config/internal/environment"
	"github.com/MKhiriev/go-webpack-config/internal/logger"
	"github.com/MKhiriev/go-webpack-config/models"
)

// Bundler modes and source map styles.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	DevtoolDevelopment = "eval-cheap-module-source-map"
	DevtoolProduction  = "nosources-source-map"
)

var resolveExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// base holds the state shared by the client and server builders and emits
// the common fragment and the two mode overlays.
type base struct {
	rootPath      string
	entries       []string
	aliases       map[string]string
	target        Target
	dev           bool
	server        bool
	devHMREnabled bool

	appConfig *config.AppConfig
	envHolder *environment.Holder
	log       *logger.Logger

	err error
}

func newBase(rootPath string, entry Entry, server bool, opts []Option) (*base, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	procEnv, err := config.ParseProcessEnv(o.environ.Environ())
	if err != nil {
		return nil, err
	}
	if procEnv.NodeEnv == "" {
		return nil, ErrMissingNodeEnv
	}

	root, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving root path %q: %w", rootPath, err)
	}

	dev := procEnv.IsDevelopment()
	b := &base{
		rootPath:      root,
		aliases:       make(map[string]string),
		dev:           dev,
		server:        server,
		devHMREnabled: true,
		log:           o.log.Component(roleName(server)),
	}
	if entry != nil {
		b.entries = entry(dev)
	}

	defaultTarget := "web"
	if server {
		defaultTarget = "node"
	}
	b.target = TargetName(defaultTarget)

	b.appConfig, err = config.LoadAppConfig(root, b.log)
	if err != nil {
		return nil, err
	}

	b.envHolder, err = environment.NewHolder(o.environ, root, b.appConfig,
		environment.WithClock(o.now),
		environment.WithLogger(b.log),
	)
	if err != nil {
		return nil, err
	}

	if o.legacyAliases {
		b.setAliases(LegacyAliases())
	}

	b.log.Debug().
		Str("root", root).
		Bool("dev", dev).
		Strs("entries", b.entries).
		Msg("builder initialised")

	return b, nil
}

func roleName(server bool) string {
	if server {
		return "server"
	}
	return "client"
}

// resolve returns p unchanged (but cleaned) when absolute, else joined onto
// the root.
func (b *base) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(b.rootPath, p)
}

func (b *base) setAlias(name, target string) {
	if name == "" || target == "" {
		b.err = errors.Join(b.err, fmt.Errorf("%w: %q -> %q", ErrInvalidAlias, name, target))
		return
	}
	b.aliases[name] = b.resolve(target)
}

func (b *base) setAliases(aliases map[string]string) {
	b.aliases = make(map[string]string, len(aliases))
	for name, target := range aliases {
		if name == "" || target == "" {
			continue
		}
		b.setAlias(name, target)
	}
}

func (b *base) setTarget(target Target) {
	if target != nil {
		b.target = target
	}
}

// resolvedEntries returns the user entries resolved against the root.
func (b *base) resolvedEntries() []string {
	out := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, b.resolve(e))
	}
	return out
}

// shimmedEntries prepends shim to the user entries when enabled.
func (b *base) shimmedEntries(shim string, enabled bool) []string {
	entries := b.resolvedEntries()
	if !enabled || shim == "" {
		return entries
	}
	return append([]string{shim}, entries...)
}

func (b *base) resolvedTarget() string {
	return b.target(b.dev)
}

func (b *base) commonConfig() *models.Configuration {
	assetsDir := b.appConfig.AssetsDir()

	definitions := make(map[string]any, 3)
	for key, values := range b.envHolder.Stringified() {
		definitions[key] = values
	}
	definitions["__isClient__"] = strconv.FormatBool(!b.server)
	definitions["__isServer__"] = strconv.FormatBool(b.server)

	return &models.Configuration{
		Resolve: &models.Resolve{
			Alias:      maps.Clone(b.aliases),
			Roots:      []string{b.rootPath},
			Extensions: append([]string(nil), resolveExtensions...),
		},
		Module: &models.Module{
			Rules: commonRules(assetsDir, b.dev, b.server),
		},
		Plugins: collectPlugins(
			enabled(cleanPlugin()),
			enabled(definePlugin(definitions)),
		),
		Stats: &models.Stats{
			All:         false,
			Assets:      true,
			AssetsSort:  "size",
			Entrypoints: true,
			Errors:      true,
			Timings:     true,
			Warnings:    true,
		},
	}
}

func (b *base) devConfig() *models.Configuration {
	return &models.Configuration{
		Mode:    ModeDevelopment,
		Devtool: DevtoolDevelopment,
		Plugins: collectPlugins(
			enabledIf(b.devHMREnabled, hmrPlugin),
			enabled(eslintPlugin()),
			enabled(stylelintPlugin()),
		),
	}
}

func (b *base) prodConfig() *models.Configuration {
	var comments any = "some"
	if b.server {
		comments = false
	}

	return &models.Configuration{
		Mode:        ModeProduction,
		Devtool:     DevtoolProduction,
		Performance: &models.Performance{Hints: false},
		Optimization: &models.Optimization{
			Minimize:  true,
			Minimizer: []models.Plugin{terserPlugin(comments)},
		},
	}
}

// merge folds fragments left to right into a fresh configuration: scalars of
// later fragments override, maps are merged and slices are concatenated.
func merge(fragments ...*models.Configuration) (*models.Configuration, error) {
	out := new(models.Configuration)
	for _, f := range fragments {
		if f == nil {
			continue
		}
		if err := mergo.Merge(out, f, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return nil, fmt.Errorf("error merging configuration fragments: %w", err)
		}
	}
	return out, nil
}

// toConfig composes the final configuration from the common fragment plus
// role additions (common), and the mode overlay plus role additions (dev or
// prod).
func (b *base) toConfig(common, dev, prod func(target string) *models.Configuration) (*models.Configuration, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	target := b.resolvedTarget()
	if b.dev {
		return merge(b.commonConfig(), common(target), b.devConfig(), dev(target))
	}
	return merge(b.commonConfig(), common(target), b.prodConfig(), prod(target))
}
