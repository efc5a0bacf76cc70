package environment

import "errors"

var (
	// ErrDotEnvParse indicates that a .env file exists but is invalid. The
	// parser error is kept in the chain.
	ErrDotEnvParse = errors.New("invalid dot-env file")
	// ErrDotEnvApply indicates that a parsed variable could not be written
	// into the environment.
	ErrDotEnvApply = errors.New("failed to apply dot-env variable")
)
