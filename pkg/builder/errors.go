package builder

import "errors"

var (
	// ErrMissingNodeEnv is returned by the constructors when NODE_ENV is not
	// set in the environment.
	ErrMissingNodeEnv = errors.New("the NODE_ENV environment variable is required but was not specified")
	// ErrInvalidAlias is recorded by SetAlias when the alias name or target
	// is empty.
	ErrInvalidAlias = errors.New("invalid alias: name and target must be non-empty")
)
