package config

import "errors"

var (
	// ErrConfigFileLoad indicates that a project configuration file exists
	// but could not be read or decoded. The underlying error is kept in the
	// chain.
	ErrConfigFileLoad = errors.New("failed to load project configuration file")
	// ErrProcessEnv indicates that the process environment could not be
	// mapped onto [ProcessEnv].
	ErrProcessEnv = errors.New("failed to read process environment")
)
