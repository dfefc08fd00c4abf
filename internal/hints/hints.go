// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-htmlcopy/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-htmlcopy") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTargetNotFound lists the targets the registry does know.
func ForTargetNotFound(available []string) string {
	if len(available) == 0 {
		return format("no valid targets configured; check the targets list or targetSet")
	}
	return formatHints([]string{
		"available: " + strings.Join(available, ", "),
		"run 'htmlcopy targets' to list them",
	})
}

// ForAssetNotFound returns hints for palette or target set not found errors.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNoInputs returns hints when no HTML or Markdown file was found.
func ForNoInputs() string {
	return format("inputs must end in .html, .htm, .md or .markdown")
}

// ForBaseURL returns hints for an invalid --base-url value.
func ForBaseURL() string {
	return format("use an absolute URL such as https://example.com/notes/ or a directory path")
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

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
