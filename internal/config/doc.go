// Package config loads the project configuration (app.config.*) and the
// process-level knobs that drive a build.
//
// The project configuration is assembled from layers in the following
// priority order (earlier layers win for non-empty fields):
//  1. the project file found at the root (see [AppConfigFileNames])
//  2. legacy field names accepted from older project files
//  3. built-in defaults
//
// The main entry points are [LoadAppConfig] for the project configuration and
// [ParseProcessEnv] for NODE_ENV / MODE.
package config
