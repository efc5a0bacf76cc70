package builder

import (
	"path"

	"github.com/MKhiriev/go-webpack-config/models"
)

// Loader names.
const (
	LoaderBabel          = "babel-loader"
	LoaderSourceMap      = "source-map-loader"
	LoaderURL            = "url-loader"
	LoaderFile           = "file-loader"
	LoaderSVGR           = "@svgr/webpack"
	LoaderStyle          = "style-loader"
	LoaderMiniCssExtract = "mini-css-extract-plugin/loader"
	LoaderCSS            = "css-loader"
	LoaderPostCSS        = "postcss-loader"
	LoaderSass           = "sass-loader"
	LoaderLess           = "less-loader"
	LoaderStylus         = "stylus-loader"
	LoaderNull           = "null-loader"
)

// Rule tests, as JavaScript regular expression sources.
const (
	TestScript     = `\.[jt]sx?$`
	TestJS         = `\.js$`
	TestImage      = `\.(png|jpe?g|gif)$`
	TestMedia      = `\.(mp4|webm|ogg|mp3|wav|flac|aac)$`
	TestSVG        = `\.svg$`
	TestFont       = `\.(woff2?|eot|ttf|otf)$`
	TestCSS        = `\.css$`
	TestSass       = `\.s[ac]ss$`
	TestLess       = `\.less$`
	TestStylus     = `\.styl$`
	TestServerCSS  = `\.s?[ac]ss$`
	ExcludeModules = `node_modules`
)

// FlagIgnoreCase makes a rule test case-insensitive. Asset rules carry it so
// that upper-case extensions such as logo.PNG still match.
const FlagIgnoreCase = "i"

// assetInlineLimit is the size in bytes under which url-loader inlines an
// asset as a data URL. The compression plugin uses the same threshold.
const assetInlineLimit = 8192

var preprocessorLoaders = map[models.CSSLoaderKind]string{
	models.CSSLoaderSass:   LoaderSass,
	models.CSSLoaderLess:   LoaderLess,
	models.CSSLoaderStylus: LoaderStylus,
}

// assetName is the emitted file name of static assets: stable in
// development, content-hashed in production.
func assetName(dev bool) string {
	if dev {
		return "[name].[ext]"
	}
	return "[name].[contenthash:7].[ext]"
}

// commonRules returns the target-agnostic loader rules, in order.
func commonRules(assetsDir string, dev, server bool) []models.Rule {
	emitFile := !server

	return []models.Rule{
		{
			Test:    TestScript,
			Exclude: ExcludeModules,
			Use: []models.UseEntry{{
				Loader:  LoaderBabel,
				Options: map[string]any{"cacheDirectory": true},
			}},
		},
		{
			Test:    TestJS,
			Enforce: "pre",
			Use:     []models.UseEntry{{Loader: LoaderSourceMap}},
		},
		{
			Test:    TestImage,
			Flags:   FlagIgnoreCase,
			Exclude: ExcludeModules,
			Use: []models.UseEntry{{
				Loader: LoaderURL,
				Options: map[string]any{
					"limit":    assetInlineLimit,
					"emitFile": emitFile,
					"name":     path.Join(assetsDir, "img", assetName(dev)),
				},
			}},
		},
		{
			Test:  TestMedia,
			Flags: FlagIgnoreCase,
			Use:  []models.UseEntry{fileLoader(path.Join(assetsDir, "media"), dev, emitFile)},
		},
		{
			Test:    TestSVG,
			Flags:   FlagIgnoreCase,
			Exclude: ExcludeModules,
			Use: []models.UseEntry{
				{Loader: LoaderSVGR},
				{
					Loader: LoaderURL,
					Options: map[string]any{
						"limit":      assetInlineLimit,
						"emitFile":   emitFile,
						"outputPath": path.Join(assetsDir, "img"),
						"name":       assetName(dev),
					},
				},
			},
		},
		{
			Test:  TestFont,
			Flags: FlagIgnoreCase,
			Use:  []models.UseEntry{fileLoader(path.Join(assetsDir, "fonts"), dev, emitFile)},
		},
	}
}

func fileLoader(outputPath string, dev, emitFile bool) models.UseEntry {
	return models.UseEntry{
		Loader: LoaderFile,
		Options: map[string]any{
			"emitFile":   emitFile,
			"outputPath": outputPath,
			"name":       assetName(dev),
		},
	}
}

// cssLoaders returns the loader chain for a style kind in application order:
// injection, css-loader, postcss-loader and, for preprocessor kinds, the
// preprocessor loader.
func cssLoaders(css loaderOptionSource, kind models.CSSLoaderKind, dev bool) []models.UseEntry {
	inject := LoaderMiniCssExtract
	if dev {
		inject = LoaderStyle
	}

	use := []models.UseEntry{
		{Loader: inject},
		{Loader: LoaderCSS, Options: css.LoaderOption(models.CSSLoaderCSS)},
		{Loader: LoaderPostCSS, Options: css.LoaderOption(models.CSSLoaderPostCSS)},
	}
	if kind.IsPreprocessor() {
		use = append(use, models.UseEntry{Loader: preprocessorLoaders[kind], Options: css.LoaderOption(kind)})
	}
	return use
}

type loaderOptionSource interface {
	LoaderOption(kind models.CSSLoaderKind) models.CSSLoaderOption
}
