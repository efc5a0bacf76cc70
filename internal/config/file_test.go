package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDataModule(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "commonjs", in: `module.exports = { a: 1 };`, want: `{ a: 1 }`},
		{name: "esm", in: "export default {\n  a: 1\n}\n", want: "{\n  a: 1\n}"},
		{name: "bare object", in: `{ "a": 1 }`, want: `{ "a": 1 }`},
		{name: "line comments", in: "// header\nmodule.exports = {a: 1}\n// footer", want: "{a: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(stripDataModule([]byte(tt.in))))
		})
	}
}

func TestNormalizeObjectLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "glued colon", in: `{outputDir:"build"}`, want: `{outputDir: "build"}`},
		{name: "spaced colon", in: `{ a: 1 }`, want: `{ a: 1 }`},
		{name: "colon in string", in: `{a:"x:y"}`, want: `{a: "x:y"}`},
		{name: "escaped quote", in: `{a:"x\":y"}`, want: `{a: "x\":y"}`},
		{name: "url in string", in: `{a:'http://h/p'}`, want: `{a: 'http://h/p'}`},
		{name: "line comment", in: "{a:1, // note\nb:2}", want: "{a: 1, \nb: 2}"},
		{name: "block comment", in: `{a:1, /* x:y */ b:2}`, want: `{a: 1,   b: 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(normalizeObjectLiteral([]byte(tt.in))))
		})
	}
}

func TestParseAppConfigFile_JSEntryWithoutValue(t *testing.T) {
	root := t.TempDir()
	path := writeProjectFile(t, root, "app.config.js", `module.exports = { outputDir };`)

	cfg, err := parseAppConfigFile(path)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigFileLoad)
}

func TestFindAppConfigFile_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "app.config.json"), 0o755))
	yml := writeProjectFile(t, root, "app.config.yml", "outputDir: x\n")

	path, found, err := findAppConfigFile(root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, yml, path)
}

func TestFindAppConfigFile_Missing(t *testing.T) {
	path, found, err := findAppConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, path)
}

func TestParseAppConfigFile_UnknownFieldsIgnored(t *testing.T) {
	root := t.TempDir()
	path := writeProjectFile(t, root, "app.config.json", `{"outputDir": "o", "devServer": {"port": 3000}}`)

	cfg, err := parseAppConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "o", cfg.OutputDir)
}
