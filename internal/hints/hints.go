// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/entrymd/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/entrymd) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/entrymd") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDirection returns hints when the conversion direction cannot be
// determined from the input.
func ForDirection() string {
	return format("pass --to md or --to html, or use a .md/.html input file")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
