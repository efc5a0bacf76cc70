package builder

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webpack-config/models"
)

// ── common ────────────────────────────────────────────────────────────────────

// TestServer_Common checks the output, node and style handling shared by
// both modes.
func TestServer_Common(t *testing.T) {
	root := t.TempDir()

	for _, nodeEnv := range []string{"development", "production"} {
		t.Run(nodeEnv, func(t *testing.T) {
			cfg := toConfig(t, newTestServer(t, root, nodeEnv))

			assert.Equal(t, "server", cfg.Name)
			assert.Equal(t, "node", cfg.Target)
			assert.Equal(t, filepath.Join(root, "dist", "server"), cfg.Output.Path)
			assert.Equal(t, "/", cfg.Output.PublicPath)
			assert.Equal(t, "[name].js", cfg.Output.Filename)
			assert.Equal(t, &models.Node{Dirname: false, Filename: false}, cfg.Node)

			rule, ok := cfg.FindRule(TestServerCSS)
			require.True(t, ok, "style files must be swallowed on the server")
			assert.Equal(t, []string{LoaderNull}, rule.Loaders())
			_, ok = cfg.FindRule(TestSass)
			assert.False(t, ok)
		})
	}
}

// ── development ───────────────────────────────────────────────────────────────

// TestServer_DevelopmentDefaults checks watch mode, the signal shim, the
// externals and the plugins of a default development build.
func TestServer_DevelopmentDefaults(t *testing.T) {
	root := t.TempDir()
	cfg := toConfig(t, newTestServer(t, root, "development").SetRunScriptArgs([]string{"--inspect"}))

	require.NotNil(t, cfg.Watch)
	assert.True(t, *cfg.Watch)
	assert.Equal(t, []string{HotSignalEntry, filepath.Join(root, "src/main.ts")}, cfg.Entry)
	assert.Equal(t, "static/js/[name].chunk.js", cfg.Output.ChunkFilename)
	assert.Equal(t, []models.Externals{{
		Kind:      NodeExternalsKind,
		Allowlist: []string{HotSignalEntry, nodeExternalsAssets},
	}}, cfg.Externals)

	assert.Equal(t, []string{
		PluginClean, PluginDefine,
		PluginHMR, PluginESLint, PluginStylelint,
		PluginWatchIgnore, PluginRunScript,
	}, pluginNames(cfg))

	run, _ := cfg.FindPlugin(PluginRunScript)
	assert.Equal(t, []string{"--inspect"}, run.Options["args"])
	assert.Equal(t, "main.js", run.Options["name"])
}

// TestServer_DevelopmentDisabled checks that turning off HMR and the run
// script drops their plugins and the shim.
func TestServer_DevelopmentDisabled(t *testing.T) {
	root := t.TempDir()
	cfg := toConfig(t, newTestServer(t, root, "development").
		SetDevHMREnabled(false).
		SetDevRunScript(false))

	require.NotNil(t, cfg.Watch)
	assert.False(t, *cfg.Watch)
	assert.Equal(t, []string{filepath.Join(root, "src/main.ts")}, cfg.Entry)
	assert.Equal(t, []string{
		PluginClean, PluginDefine,
		PluginESLint, PluginStylelint,
		PluginWatchIgnore,
	}, pluginNames(cfg))
}

// TestServer_RunScriptArgsAreCopied checks that the caller's slice is not
// retained.
func TestServer_RunScriptArgsAreCopied(t *testing.T) {
	args := []string{"--port", "3000"}
	s := newTestServer(t, t.TempDir(), "development").SetRunScriptArgs(args)
	args[1] = "9999"

	run, ok := toConfig(t, s).FindPlugin(PluginRunScript)
	require.True(t, ok)
	assert.Equal(t, []string{"--port", "3000"}, run.Options["args"])
}

// ── production ────────────────────────────────────────────────────────────────

// TestServer_Production checks the production output and plugin list.
func TestServer_Production(t *testing.T) {
	root := t.TempDir()
	cfg := toConfig(t, newTestServer(t, root, "production"))

	assert.Nil(t, cfg.Watch)
	assert.Empty(t, cfg.Externals)
	assert.Equal(t, []string{filepath.Join(root, "src/main.ts")}, cfg.Entry)
	assert.Equal(t, "[name]", cfg.Output.Library)
	assert.Equal(t, "static/js/[name].[contenthash:7].chunk.js", cfg.Output.ChunkFilename)
	assert.Equal(t, []string{PluginClean, PluginDefine}, pluginNames(cfg))
	assert.Nil(t, cfg.Optimization.SplitChunks)
}

// TestServer_ToConfigIsRepeatable checks that two calls with no mutation in
// between produce equal configurations.
func TestServer_ToConfigIsRepeatable(t *testing.T) {
	for _, nodeEnv := range []string{"development", "production"} {
		t.Run(nodeEnv, func(t *testing.T) {
			s := newTestServer(t, t.TempDir(), nodeEnv, WithLegacyAliases())

			if diff := cmp.Diff(toConfig(t, s), toConfig(t, s)); diff != "" {
				t.Errorf("ToConfig() mismatch (-first +second):\n%s", diff)
			}
		})
	}
}
