// Package environment owns every interaction with the process environment:
// layered .env loading and the snapshot of variables handed to the bundler
// for compile-time substitution.
//
// Access goes through the [Environment] interface so callers can swap the
// real process environment ([OS]) for an in-memory one ([Map]).
package environment
