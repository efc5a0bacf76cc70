// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Configuration is the final bundler configuration produced by a builder.
//
// Fragments of this type are merged key-wise: scalar fields of later
// fragments override earlier ones, maps are merged and slices concatenated.
type Configuration struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Mode    string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Target  string   `json:"target,omitempty" yaml:"target,omitempty"`
	Devtool string   `json:"devtool,omitempty" yaml:"devtool,omitempty"`
	Watch   *bool    `json:"watch,omitempty" yaml:"watch,omitempty"`
	Entry   []string `json:"entry,omitempty" yaml:"entry,omitempty"`

	Output  *Output  `json:"output,omitempty" yaml:"output,omitempty"`
	Resolve *Resolve `json:"resolve,omitempty" yaml:"resolve,omitempty"`
	Module  *Module  `json:"module,omitempty" yaml:"module,omitempty"`
	Plugins []Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`

	Externals []Externals `json:"externals,omitempty" yaml:"externals,omitempty"`
	Node      *Node       `json:"node,omitempty" yaml:"node,omitempty"`

	Optimization          *Optimization          `json:"optimization,omitempty" yaml:"optimization,omitempty"`
	Performance           *Performance           `json:"performance,omitempty" yaml:"performance,omitempty"`
	InfrastructureLogging *InfrastructureLogging `json:"infrastructureLogging,omitempty" yaml:"infrastructureLogging,omitempty"`
	Stats                 *Stats                 `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Output describes where and under which names compiled assets are written.
type Output struct {
	Path          string `json:"path,omitempty" yaml:"path,omitempty"`
	PublicPath    string `json:"publicPath,omitempty" yaml:"publicPath,omitempty"`
	Filename      string `json:"filename,omitempty" yaml:"filename,omitempty"`
	ChunkFilename string `json:"chunkFilename,omitempty" yaml:"chunkFilename,omitempty"`
	Library       string `json:"library,omitempty" yaml:"library,omitempty"`
}

// Resolve configures module resolution.
type Resolve struct {
	Alias      map[string]string `json:"alias" yaml:"alias"`
	Roots      []string          `json:"roots,omitempty" yaml:"roots,omitempty"`
	Extensions []string          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Module wraps the ordered loader rule list.
type Module struct {
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Rule routes files whose path matches Test through the Use chain.
// Test and Exclude are regular expression sources in the bundler's
// (JavaScript) dialect and are never compiled by this module. Flags holds
// the flags of Test, e.g. "i" for case-insensitive matching.
//
// Regular expressions inside free-form option values (plugin options,
// externals allowlists) have no sibling flags field and are written as
// literals instead, see [RegExpLiteral].
type Rule struct {
	Test    string     `json:"test" yaml:"test"`
	Flags   string     `json:"flags,omitempty" yaml:"flags,omitempty"`
	Exclude string     `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Enforce string     `json:"enforce,omitempty" yaml:"enforce,omitempty"`
	Use     []UseEntry `json:"use" yaml:"use"`
}

// UseEntry is a single loader with its options, listed in application order.
type UseEntry struct {
	Loader  string         `json:"loader" yaml:"loader"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Plugin references a bundler plugin by name together with the options it
// should be instantiated with.
type Plugin struct {
	Name    string         `json:"name" yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Externals describes a generator of external modules, e.g. the list of
// installed node_modules packages that must not be bundled.
type Externals struct {
	Kind      string   `json:"kind" yaml:"kind"`
	Allowlist []string `json:"allowlist,omitempty" yaml:"allowlist,omitempty"`
}

// Node controls how node globals are polyfilled or mocked.
type Node struct {
	Dirname  bool `json:"__dirname" yaml:"__dirname"`
	Filename bool `json:"__filename" yaml:"__filename"`
}

// Optimization holds minimizer and chunk splitting settings.
type Optimization struct {
	Minimize     bool         `json:"minimize,omitempty" yaml:"minimize,omitempty"`
	Minimizer    []Plugin     `json:"minimizer,omitempty" yaml:"minimizer,omitempty"`
	RuntimeChunk bool         `json:"runtimeChunk,omitempty" yaml:"runtimeChunk,omitempty"`
	SplitChunks  *SplitChunks `json:"splitChunks,omitempty" yaml:"splitChunks,omitempty"`
}

// SplitChunks configures the chunk splitting strategy.
type SplitChunks struct {
	Chunks      string                `json:"chunks" yaml:"chunks"`
	CacheGroups map[string]CacheGroup `json:"cacheGroups,omitempty" yaml:"cacheGroups,omitempty"`
}

// CacheGroup pulls modules matching Test into a dedicated chunk.
type CacheGroup struct {
	Test     string `json:"test" yaml:"test"`
	Name     string `json:"name" yaml:"name"`
	Priority int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Performance controls asset size hints.
type Performance struct {
	Hints bool `json:"hints" yaml:"hints"`
}

// InfrastructureLogging controls the bundler's own infrastructure log output.
type InfrastructureLogging struct {
	Level string `json:"level" yaml:"level"`
}

// Stats is the build report presentation.
type Stats struct {
	All         bool   `json:"all" yaml:"all"`
	Assets      bool   `json:"assets" yaml:"assets"`
	AssetsSort  string `json:"assetsSort" yaml:"assetsSort"`
	Entrypoints bool   `json:"entrypoints" yaml:"entrypoints"`
	Errors      bool   `json:"errors" yaml:"errors"`
	Timings     bool   `json:"timings" yaml:"timings"`
	Warnings    bool   `json:"warnings" yaml:"warnings"`
}

// FindPlugin returns the first plugin with the given name.
func (c *Configuration) FindPlugin(name string) (Plugin, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}

// FindRule returns the first rule whose Test equals test.
func (c *Configuration) FindRule(test string) (Rule, bool) {
	if c.Module == nil {
		return Rule{}, false
	}
	for _, r := range c.Module.Rules {
		if r.Test == test {
			return r, true
		}
	}
	return Rule{}, false
}

// Loaders returns the loader names of the rule in application order.
func (r Rule) Loaders() []string {
	names := make([]string, 0, len(r.Use))
	for _, u := range r.Use {
		names = append(names, u.Loader)
	}
	return names
}

// RegExpLiteral renders a regular expression as a /source/flags literal, the
// form used wherever a pattern shares a value slot with plain strings.
func RegExpLiteral(source, flags string) string {
	return "/" + source + "/" + flags
}
