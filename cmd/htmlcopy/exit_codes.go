package main

import (
	"errors"
	"os"

	"github.com/alnah/go-htmlcopy"
	"github.com/alnah/go-htmlcopy/internal/assets"
	"github.com/alnah/go-htmlcopy/internal/config"
)

// Exit codes for the htmlcopy CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All inputs rewritten
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, target or assets
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoTarget) ||
		errors.Is(err, ErrUnknownTarget) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrTooManyEntries) ||
		errors.Is(err, config.ErrInvalidColorKey) ||
		errors.Is(err, config.ErrInvalidBaseURL) ||
		errors.Is(err, assets.ErrPaletteNotFound) ||
		errors.Is(err, assets.ErrTargetSetNotFound) ||
		errors.Is(err, assets.ErrInvalidAsset) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, htmlcopy.ErrMarkdownRender) {
		return ExitUsage
	}

	return ExitGeneral
}
