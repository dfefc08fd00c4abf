// Package assets provides color palettes and copy target sets.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (shipped assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader ships the "default" and "dark" palettes and the "default"
// and "plain" target sets.
//
// AssetResolver is the loader used by the CLI. A custom directory overrides
// an embedded asset of the same name; anything it lacks falls back to the
// embedded copy.
//
// # Directory Structure
//
//	{basePath}/
//	├── palettes/
//	│   └── {name}.yaml    # colors: {"#333": "#000"}
//	└── targets/
//	    └── {name}.yaml    # targets, stylesToRemove, markStyle, palette
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
