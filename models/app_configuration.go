// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CSSLoaderKind names one of the style loaders whose options can be tuned
// from the project configuration.
type CSSLoaderKind string

const (
	CSSLoaderCSS     CSSLoaderKind = "css"
	CSSLoaderPostCSS CSSLoaderKind = "postcss"
	CSSLoaderSass    CSSLoaderKind = "sass"
	CSSLoaderLess    CSSLoaderKind = "less"
	CSSLoaderStylus  CSSLoaderKind = "stylus"
)

// CSSLoaderKinds lists every supported loader kind.
var CSSLoaderKinds = []CSSLoaderKind{
	CSSLoaderCSS,
	CSSLoaderPostCSS,
	CSSLoaderSass,
	CSSLoaderLess,
	CSSLoaderStylus,
}

// IsPreprocessor reports whether the kind needs a dedicated preprocessor
// loader appended after postcss.
func (k CSSLoaderKind) IsPreprocessor() bool {
	switch k {
	case CSSLoaderSass, CSSLoaderLess, CSSLoaderStylus:
		return true
	default:
		return false
	}
}

// CSSLoaderOption is an arbitrary option map handed to a loader.
type CSSLoaderOption map[string]any

// CSSLoaderOptions maps a loader kind to its options.
type CSSLoaderOptions map[CSSLoaderKind]CSSLoaderOption

// CSSConfiguration is the css section of the project configuration.
type CSSConfiguration struct {
	LoaderOptions CSSLoaderOptions `json:"loaderOptions,omitempty" yaml:"loaderOptions,omitempty"`
}

// AppConfiguration is the project configuration document (app.config.*).
type AppConfiguration struct {
	OutputDir  string           `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	AssetsDir  string           `json:"assetsDir,omitempty" yaml:"assetsDir,omitempty"`
	PublicPath string           `json:"publicPath,omitempty" yaml:"publicPath,omitempty"`
	CSS        CSSConfiguration `json:"css,omitempty" yaml:"css,omitempty"`

	// DistDir and SassAdditionalData are the field names used by older
	// project files. They are honoured when the newer fields are unset.
	DistDir            string `json:"distDir,omitempty" yaml:"distDir,omitempty"`
	SassAdditionalData string `json:"sassAdditionalData,omitempty" yaml:"sassAdditionalData,omitempty"`
}
