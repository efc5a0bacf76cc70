package builder

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-webpack-config/internal/environment"
	"github.com/MKhiriev/go-webpack-config/internal/logger"
)

// Environment is the set of variables a builder reads NODE_ENV, MODE and
// APP_* from, and writes .env values into.
type Environment = environment.Environment

// OSEnvironment returns the real process environment.
func OSEnvironment() Environment {
	return environment.OS()
}

// MapEnvironment wraps m as an Environment. Values loaded from .env files
// are written into m.
func MapEnvironment(m map[string]string) Environment {
	if m == nil {
		m = map[string]string{}
	}
	return environment.Map(m)
}

type options struct {
	log           *logger.Logger
	environ       Environment
	now           func() time.Time
	legacyAliases bool
}

func defaultOptions() options {
	return options{
		log:     logger.Nop(),
		environ: environment.OS(),
		now:     time.Now,
	}
}

// Option customises a builder at construction time.
type Option func(*options)

// WithLogger sends construction events (files probed and loaded, resolved
// mode) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = logger.Wrap(l)
	}
}

// WithEnvironment replaces the process environment.
func WithEnvironment(env Environment) Option {
	return func(o *options) {
		if env != nil {
			o.environ = env
		}
	}
}

// WithClock replaces the clock used for BUILD_TIME.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLegacyAliases pre-installs the "@" → <root>/src and "~" → <root>
// aliases. A later SetAliases replaces them like any other alias.
func WithLegacyAliases() Option {
	return func(o *options) {
		o.legacyAliases = true
	}
}
