package assets

import (
	"errors"
	"slices"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadPalette loads a palette, trying the custom loader first if available.
func (r *AssetResolver) LoadPalette(name string) (*Palette, error) {
	return loadWithFallback(r, func(loader AssetLoader) (*Palette, error) {
		return loader.LoadPalette(name)
	})
}

// LoadTargetSet loads a target set, trying the custom loader first if available.
func (r *AssetResolver) LoadTargetSet(name string) (*TargetSet, error) {
	return loadWithFallback(r, func(loader AssetLoader) (*TargetSet, error) {
		return loader.LoadTargetSet(name)
	})
}

// List returns the union of custom and embedded names, sorted.
func (r *AssetResolver) List(kind Kind) ([]string, error) {
	names, err := r.embedded.List(kind)
	if err != nil {
		return nil, err
	}
	if r.custom != nil {
		custom, err := r.custom.List(kind)
		if err != nil {
			return nil, err
		}
		names = append(names, custom...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
func loadWithFallback[T any](r *AssetResolver, loadFn func(AssetLoader) (T, error)) (T, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	v, err := loadFn(r.custom)
	if err == nil {
		return v, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !isNotFoundError(err) {
		return v, err
	}

	return loadFn(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrPaletteNotFound) ||
		errors.Is(err, ErrTargetSetNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
