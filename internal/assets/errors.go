package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrPaletteNotFound indicates the requested palette does not exist.
	ErrPaletteNotFound = errors.New("palette not found")

	// ErrTargetSetNotFound indicates the requested target set does not exist.
	ErrTargetSetNotFound = errors.New("target set not found")

	// ErrInvalidAsset indicates an asset file exists but cannot be decoded.
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
