// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"

	"github.com/MKhiriev/go-webpack-config/internal/logger"
	"github.com/MKhiriev/go-webpack-config/models"
)

// Default values for project configuration fields left empty by the user.
const (
	DefaultOutputDir  = "dist"
	DefaultAssetsDir  = "static"
	DefaultPublicPath = "/"
)

// sassAdditionalDataKey is the sass-loader option fed by the legacy
// sassAdditionalData field.
const sassAdditionalDataKey = "additionalData"

// defaultCSSLoaderOptions are the per-kind options every user override is
// layered on top of.
var defaultCSSLoaderOptions = models.CSSLoaderOptions{
	models.CSSLoaderCSS:     {},
	models.CSSLoaderPostCSS: {},
	models.CSSLoaderSass:    {},
	models.CSSLoaderLess:    {},
	models.CSSLoaderStylus:  {},
}

func defaultAppConfiguration() *models.AppConfiguration {
	return &models.AppConfiguration{
		OutputDir:  DefaultOutputDir,
		AssetsDir:  DefaultAssetsDir,
		PublicPath: DefaultPublicPath,
	}
}

// AppConfig is the loaded project configuration. Every getter returns a
// usable value: fields absent from the project file resolve to defaults.
type AppConfig struct {
	cfg    models.AppConfiguration
	css    *CSSConfig
	source string
}

// LoadAppConfig probes rootPath for a project configuration file and merges
// it over the defaults. A missing file is not an error; a file that exists
// but cannot be decoded fails with [ErrConfigFileLoad].
func LoadAppConfig(rootPath string, log *logger.Logger) (*AppConfig, error) {
	return newConfigBuilder(log).
		withFile(rootPath).
		withLegacyFields().
		withDefaults().
		build()
}

// NewAppConfig builds an AppConfig from an in-memory document, applying the
// same layering as [LoadAppConfig].
func NewAppConfig(doc models.AppConfiguration) (*AppConfig, error) {
	b := newConfigBuilder(nil)
	b.file = &doc
	b.configs = append(b.configs, &doc)

	return b.withLegacyFields().withDefaults().build()
}

// OutputDir returns the build output directory relative to the root.
func (c *AppConfig) OutputDir() string {
	return c.cfg.OutputDir
}

// AssetsDir returns the directory, relative to the output directory, under
// which static assets are emitted.
func (c *AppConfig) AssetsDir() string {
	return c.cfg.AssetsDir
}

// PublicPath returns the URL prefix the assets are served from. The trailing
// slash, if any, is kept.
func (c *AppConfig) PublicPath() string {
	return c.cfg.PublicPath
}

// CSSConfig returns the style loader options holder.
func (c *AppConfig) CSSConfig() *CSSConfig {
	return c.css
}

// Source returns the path of the project file that was loaded, or "" when
// the defaults are in effect.
func (c *AppConfig) Source() string {
	return c.source
}

// CSSConfig exposes per-kind style loader options.
type CSSConfig struct {
	loaderOptions models.CSSLoaderOptions
}

func newCSSConfig(css models.CSSConfiguration, sassAdditionalData string) *CSSConfig {
	opts := make(models.CSSLoaderOptions, len(css.LoaderOptions))
	for kind, opt := range css.LoaderOptions {
		opts[kind] = maps.Clone(opt)
	}

	if sassAdditionalData != "" {
		sass := opts[models.CSSLoaderSass]
		if sass == nil {
			sass = models.CSSLoaderOption{}
		}
		if _, ok := sass[sassAdditionalDataKey]; !ok {
			sass[sassAdditionalDataKey] = sassAdditionalData
		}
		opts[models.CSSLoaderSass] = sass
	}

	return &CSSConfig{loaderOptions: opts}
}

// LoaderOption returns a fresh copy of defaults[kind] with the user options
// for kind copied over them. Unknown kinds yield an empty map.
func (c *CSSConfig) LoaderOption(kind models.CSSLoaderKind) models.CSSLoaderOption {
	out := models.CSSLoaderOption{}
	maps.Copy(out, defaultCSSLoaderOptions[kind])
	if c != nil {
		maps.Copy(out, c.loaderOptions[kind])
	}
	return out
}
