package builder

// LegacyAliases returns the alias table installed by [WithLegacyAliases]:
// "@" for the source directory and "~" for the project root, both relative
// to the root.
func LegacyAliases() map[string]string {
	return map[string]string{
		"@": "src",
		"~": ".",
	}
}
