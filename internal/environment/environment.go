package environment

//go:generate mockgen -source=environment.go -destination=../mock/environment_mock.go -package=mock

import (
	"maps"
	"os"
	"strings"
)

// Environment is a mutable set of environment variables.
type Environment interface {
	// Lookup returns the value of key and whether it is defined.
	Lookup(key string) (string, bool)
	// Set defines key.
	Set(key, value string) error
	// Environ returns a snapshot of every defined variable.
	Environ() map[string]string
}

type osEnvironment struct{}

// OS returns the real process environment.
func OS() Environment {
	return osEnvironment{}
}

func (osEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (osEnvironment) Environ() map[string]string {
	environ := os.Environ()
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// Map is an in-memory Environment. Set writes into the map itself, so the
// map must be non-nil.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m Map) Environ() map[string]string {
	return maps.Clone(map[string]string(m))
}
