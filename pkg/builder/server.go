// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-webpack-config/models"
)

// HotSignalEntry is the signal-driven hot update shim prepended to
// development server entries.
const HotSignalEntry = "webpack/hot/signal"

// nodeExternalsAssets lets node_modules files with a non-script extension of
// one to five characters (styles, images) through to the bundle.
var nodeExternalsAssets = models.RegExpLiteral(`\.(?!(?:jsx?|json)$).{1,5}$`, FlagIgnoreCase)

// NodeExternalsKind names the externals generator for installed packages.
const NodeExternalsKind = "webpack-node-externals"

// ServerConfig builds configurations for node bundles.
type ServerConfig struct {
	*base

	devRunScript  bool
	runScriptArgs []string
}

// NewServer creates a server builder rooted at rootPath. It reads NODE_ENV,
// the project file and the .env files immediately and fails with
// [ErrMissingNodeEnv] when NODE_ENV is not set.
func NewServer(rootPath string, entry Entry, opts ...Option) (*ServerConfig, error) {
	b, err := newBase(rootPath, entry, true, opts)
	if err != nil {
		return nil, err
	}
	return &ServerConfig{base: b, devRunScript: true}, nil
}

// SetAlias maps an import name to a path. Relative targets are resolved
// against the root. An empty name or target is recorded and reported by
// ToConfig.
func (s *ServerConfig) SetAlias(name, target string) *ServerConfig {
	s.setAlias(name, target)
	return s
}

// SetAliases replaces the whole alias table.
func (s *ServerConfig) SetAliases(aliases map[string]string) *ServerConfig {
	s.setAliases(aliases)
	return s
}

// SetDevHMREnabled toggles watch mode and hot updates for development builds.
func (s *ServerConfig) SetDevHMREnabled(enabled bool) *ServerConfig {
	s.devHMREnabled = enabled
	return s
}

// SetTarget sets the bundler target.
func (s *ServerConfig) SetTarget(target string) *ServerConfig {
	s.setTarget(TargetName(target))
	return s
}

// SetTargetFunc sets a target computed from the development flag.
func (s *ServerConfig) SetTargetFunc(target Target) *ServerConfig {
	s.setTarget(target)
	return s
}

// SetDevRunScript toggles running the compiled bundle after each
// development build.
func (s *ServerConfig) SetDevRunScript(run bool) *ServerConfig {
	s.devRunScript = run
	return s
}

// SetRunScriptArgs sets the arguments passed to the compiled bundle. args is
// copied.
func (s *ServerConfig) SetRunScriptArgs(args []string) *ServerConfig {
	s.runScriptArgs = append([]string(nil), args...)
	return s
}

// ToConfig returns the development or production server configuration,
// depending on NODE_ENV.
func (s *ServerConfig) ToConfig() (*models.Configuration, error) {
	return s.toConfig(s.commonAdditions, s.devAdditions, s.prodAdditions)
}

func (s *ServerConfig) commonAdditions(target string) *models.Configuration {
	return &models.Configuration{
		Name:   "server",
		Target: target,
		Output: &models.Output{
			Path:       filepath.Join(s.rootPath, s.appConfig.OutputDir(), "server"),
			PublicPath: s.appConfig.PublicPath(),
		},
		Module: &models.Module{Rules: []models.Rule{{
			Test: TestServerCSS,
			Use:  []models.UseEntry{{Loader: LoaderNull}},
		}}},
		Node: &models.Node{Dirname: false, Filename: false},
	}
}

func (s *ServerConfig) devAdditions(string) *models.Configuration {
	watch := s.devHMREnabled

	return &models.Configuration{
		Watch: &watch,
		Entry: s.shimmedEntries(HotSignalEntry, s.devHMREnabled),
		Output: &models.Output{
			Filename:      "[name].js",
			ChunkFilename: path.Join(s.appConfig.AssetsDir(), "js", "[name].chunk.js"),
		},
		Externals: []models.Externals{{
			Kind:      NodeExternalsKind,
			Allowlist: []string{HotSignalEntry, nodeExternalsAssets},
		}},
		Plugins: collectPlugins(
			enabled(watchIgnorePlugin()),
			enabledIf(s.devRunScript, func() models.Plugin {
				return runScriptPlugin(s.runScriptArgs)
			}),
		),
	}
}

func (s *ServerConfig) prodAdditions(string) *models.Configuration {
	return &models.Configuration{
		Entry: s.resolvedEntries(),
		Output: &models.Output{
			Filename:      "[name].js",
			Library:       "[name]",
			ChunkFilename: path.Join(s.appConfig.AssetsDir(), "js", "[name].[contenthash:7].chunk.js"),
		},
	}
}
