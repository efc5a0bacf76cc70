package builder

import "github.com/MKhiriev/go-webpack-config/models"

// Plugin names as exported by their packages.
const (
	PluginClean          = "CleanWebpackPlugin"
	PluginDefine         = "DefinePlugin"
	PluginHMR            = "HotModuleReplacementPlugin"
	PluginESLint         = "ESLintPlugin"
	PluginStylelint      = "StylelintPlugin"
	PluginTerser         = "TerserPlugin"
	PluginCopy           = "CopyPlugin"
	PluginReactRefresh   = "ReactRefreshWebpackPlugin"
	PluginForkTsChecker  = "ForkTsCheckerWebpackPlugin"
	PluginMiniCssExtract = "MiniCssExtractPlugin"
	PluginCompression    = "CompressionPlugin"
	PluginAssets         = "AssetsPlugin"
	PluginWatchIgnore    = "WatchIgnorePlugin"
	PluginRunScript      = "RunScriptWebpackPlugin"
)

// optionalPlugin is either an enabled plugin or nothing. Disabled slots are
// dropped by collectPlugins and never reach the output.
type optionalPlugin struct {
	plugin  models.Plugin
	enabled bool
}

func enabled(p models.Plugin) optionalPlugin {
	return optionalPlugin{plugin: p, enabled: true}
}

func disabled() optionalPlugin {
	return optionalPlugin{}
}

func enabledIf(cond bool, p func() models.Plugin) optionalPlugin {
	if !cond {
		return disabled()
	}
	return enabled(p())
}

func collectPlugins(slots ...optionalPlugin) []models.Plugin {
	plugins := make([]models.Plugin, 0, len(slots))
	for _, s := range slots {
		if s.enabled {
			plugins = append(plugins, s.plugin)
		}
	}
	return plugins
}

func cleanPlugin() models.Plugin {
	return models.Plugin{Name: PluginClean}
}

func definePlugin(definitions map[string]any) models.Plugin {
	return models.Plugin{Name: PluginDefine, Options: definitions}
}

func hmrPlugin() models.Plugin {
	return models.Plugin{Name: PluginHMR}
}

func eslintPlugin() models.Plugin {
	return models.Plugin{Name: PluginESLint, Options: map[string]any{
		"extensions":    []string{"js", "jsx", "ts", "tsx"},
		"emitError":     true,
		"emitWarning":   true,
		"failOnError":   false,
		"failOnWarning": false,
	}}
}

func stylelintPlugin() models.Plugin {
	return models.Plugin{Name: PluginStylelint, Options: map[string]any{
		"emitError":     true,
		"emitWarning":   true,
		"failOnError":   false,
		"failOnWarning": false,
	}}
}

// terserPlugin keeps "some" license comments on client bundles; comments is
// false for server bundles.
func terserPlugin(comments any) models.Plugin {
	return models.Plugin{Name: PluginTerser, Options: map[string]any{
		"terserOptions": map[string]any{
			"format": map[string]any{"comments": comments},
		},
		"extractComments": false,
	}}
}

func copyPlugin(context string) models.Plugin {
	return models.Plugin{Name: PluginCopy, Options: map[string]any{
		"patterns": []map[string]any{{
			"from":             "**/*",
			"context":          context,
			"noErrorOnMissing": true,
		}},
	}}
}

func reactRefreshPlugin() models.Plugin {
	return models.Plugin{Name: PluginReactRefresh, Options: map[string]any{
		"overlay": map[string]any{"sockIntegration": "whm"},
	}}
}

func forkTsCheckerPlugin() models.Plugin {
	return models.Plugin{Name: PluginForkTsChecker}
}

func miniCssExtractPlugin(filename, chunkFilename string) models.Plugin {
	return models.Plugin{Name: PluginMiniCssExtract, Options: map[string]any{
		"filename":      filename,
		"chunkFilename": chunkFilename,
	}}
}

func compressionPlugin() models.Plugin {
	return models.Plugin{Name: PluginCompression, Options: map[string]any{
		"algorithm": "gzip",
		"filename":  "[path][base].gz[query]",
		"test":      models.RegExpLiteral(`\.(js|css)$`, ""),
		"minRatio":  0.8,
		"threshold": assetInlineLimit,
	}}
}

func assetsPlugin(dir string) models.Plugin {
	return models.Plugin{Name: PluginAssets, Options: map[string]any{
		"path":            dir,
		"filename":        "assets.json",
		"useCompilerPath": false,
		"fullPath":        true,
		"entrypoints":     true,
	}}
}

func watchIgnorePlugin() models.Plugin {
	return models.Plugin{Name: PluginWatchIgnore, Options: map[string]any{
		"paths": []string{models.RegExpLiteral(`\.d\.ts$`, "")},
	}}
}

func runScriptPlugin(args []string) models.Plugin {
	return models.Plugin{Name: PluginRunScript, Options: map[string]any{
		"name":        "main.js",
		"args":        append([]string{}, args...),
		"signal":      true,
		"restartable": true,
	}}
}
