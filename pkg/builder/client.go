// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-webpack-config/models"
)

// HMRClientEntry is the hot middleware client prepended to development
// client entries.
const HMRClientEntry = "webpack-hot-middleware/client"

// clientStyleRules pairs each client style rule with its loader kind, in
// emission order.
var clientStyleRules = []struct {
	test    string
	exclude string
	kind    models.CSSLoaderKind
}{
	{test: TestCSS, kind: models.CSSLoaderCSS},
	{test: TestSass, exclude: ExcludeModules, kind: models.CSSLoaderSass},
	{test: TestLess, exclude: ExcludeModules, kind: models.CSSLoaderLess},
	{test: TestStylus, exclude: ExcludeModules, kind: models.CSSLoaderStylus},
}

// ClientConfig builds configurations for browser bundles.
type ClientConfig struct {
	*base
}

// NewClient creates a client builder rooted at rootPath. It reads NODE_ENV,
// the project file and the .env files immediately and fails with
// [ErrMissingNodeEnv] when NODE_ENV is not set.
func NewClient(rootPath string, entry Entry, opts ...Option) (*ClientConfig, error) {
	b, err := newBase(rootPath, entry, false, opts)
	if err != nil {
		return nil, err
	}
	return &ClientConfig{base: b}, nil
}

// SetAlias maps an import name to a path. Relative targets are resolved
// against the root. An empty name or target is recorded and reported by
// ToConfig.
func (c *ClientConfig) SetAlias(name, target string) *ClientConfig {
	c.setAlias(name, target)
	return c
}

// SetAliases replaces the whole alias table.
func (c *ClientConfig) SetAliases(aliases map[string]string) *ClientConfig {
	c.setAliases(aliases)
	return c
}

// SetDevHMREnabled toggles hot module replacement for development builds.
func (c *ClientConfig) SetDevHMREnabled(enabled bool) *ClientConfig {
	c.devHMREnabled = enabled
	return c
}

// SetTarget sets the bundler target.
func (c *ClientConfig) SetTarget(target string) *ClientConfig {
	c.setTarget(TargetName(target))
	return c
}

// SetTargetFunc sets a target computed from the development flag.
func (c *ClientConfig) SetTargetFunc(target Target) *ClientConfig {
	c.setTarget(target)
	return c
}

// CSSLoaders returns the loader chain applied to files of the given style
// kind.
func (c *ClientConfig) CSSLoaders(kind models.CSSLoaderKind, dev bool) []models.UseEntry {
	return cssLoaders(c.appConfig.CSSConfig(), kind, dev)
}

// ToConfig returns the development or production client configuration,
// depending on NODE_ENV.
func (c *ClientConfig) ToConfig() (*models.Configuration, error) {
	return c.toConfig(c.commonAdditions, c.devAdditions, c.prodAdditions)
}

func (c *ClientConfig) outputDir() string {
	return filepath.Join(c.rootPath, c.appConfig.OutputDir())
}

func (c *ClientConfig) jsName(name string) string {
	return path.Join(c.appConfig.AssetsDir(), "js", name)
}

func (c *ClientConfig) commonAdditions(target string) *models.Configuration {
	rules := make([]models.Rule, 0, len(clientStyleRules))
	for _, r := range clientStyleRules {
		rules = append(rules, models.Rule{
			Test:    r.test,
			Exclude: r.exclude,
			Use:     c.CSSLoaders(r.kind, c.dev),
		})
	}

	return &models.Configuration{
		Name:   "client",
		Target: target,
		Output: &models.Output{
			Path:       filepath.Join(c.outputDir(), "client"),
			PublicPath: c.appConfig.PublicPath(),
		},
		Module: &models.Module{Rules: rules},
		Plugins: collectPlugins(
			enabled(copyPlugin(filepath.Join(c.rootPath, "public"))),
		),
	}
}

func (c *ClientConfig) devAdditions(string) *models.Configuration {
	return &models.Configuration{
		Entry: c.shimmedEntries(HMRClientEntry, c.devHMREnabled),
		Output: &models.Output{
			Filename:      c.jsName("[name].js"),
			ChunkFilename: c.jsName("[name].chunk.js"),
		},
		InfrastructureLogging: &models.InfrastructureLogging{Level: "none"},
		Plugins: collectPlugins(
			enabledIf(c.devHMREnabled, reactRefreshPlugin),
			enabled(forkTsCheckerPlugin()),
		),
	}
}

func (c *ClientConfig) prodAdditions(string) *models.Configuration {
	cssName := func(name string) string {
		return path.Join(c.appConfig.AssetsDir(), "css", name)
	}

	return &models.Configuration{
		Entry: c.resolvedEntries(),
		Output: &models.Output{
			Filename:      c.jsName("[name].[contenthash:7].js"),
			ChunkFilename: c.jsName("[name].[contenthash:7].chunk.js"),
		},
		Optimization: &models.Optimization{
			RuntimeChunk: true,
			SplitChunks: &models.SplitChunks{
				Chunks: "all",
				CacheGroups: map[string]models.CacheGroup{
					"react": {
						Test:     `[\\/]node_modules[\\/](react|react-dom)[\\/]`,
						Name:     "react",
						Priority: 10,
					},
					"redux": {
						Test: `[\\/]node_modules[\\/](redux|react-redux|redux-thunk)[\\/]`,
						Name: "redux",
					},
				},
			},
		},
		Plugins: collectPlugins(
			enabled(miniCssExtractPlugin(
				cssName("[name].[contenthash:7].css"),
				cssName("[name].[contenthash:7].chunk.css"),
			)),
			enabled(compressionPlugin()),
			enabled(assetsPlugin(c.outputDir())),
		),
	}
}
