package builder

import "slices"

// Entry yields the entry module paths of a build. It is evaluated once,
// during construction, with the development flag.
type Entry func(dev bool) []string

// Path is an Entry with a single module.
func Path(path string) Entry {
	return Paths(path)
}

// Paths is an Entry with several modules, kept in order.
func Paths(paths ...string) Entry {
	paths = slices.Clone(paths)
	return func(bool) []string {
		return slices.Clone(paths)
	}
}

// Target yields the bundler target. It is evaluated on every ToConfig call.
type Target func(dev bool) string

// TargetName is a Target that ignores the development flag.
func TargetName(name string) Target {
	return func(bool) string {
		return name
	}
}
