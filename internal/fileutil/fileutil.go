// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Input kinds recognized by the CLI.
const (
	KindUnknown = iota
	KindHTML
	KindMarkdown
)

// Exists returns true if the path exists, whether file or directory.
// Used to decide whether an image URL without a web scheme is a local path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./htmlcopy.yaml" -> true (relative path)
//   - "/etc/htmlcopy.yaml" -> true (absolute)
//   - "C:\config\htmlcopy.yaml" -> true (Windows)
//   - "my-config" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// InputKind classifies a file by extension.
func InputKind(path string) int {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return KindHTML
	case ".md", ".markdown":
		return KindMarkdown
	default:
		return KindUnknown
	}
}
