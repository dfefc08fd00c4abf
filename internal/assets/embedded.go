package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed palettes/*.yaml targets/*.yaml
var embedded embed.FS

// EmbeddedLoader loads assets compiled into the binary.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadPalette loads a palette from embedded assets by name.
func (e *EmbeddedLoader) LoadPalette(name string) (*Palette, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, err := e.read(KindPalette, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPaletteNotFound, name)
	}
	return decodePalette(name, data)
}

// LoadTargetSet loads a target set from embedded assets by name.
func (e *EmbeddedLoader) LoadTargetSet(name string) (*TargetSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, err := e.read(KindTargetSet, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTargetSetNotFound, name)
	}
	return decodeTargetSet(name, data)
}

// List returns the embedded asset names of the given kind.
func (e *EmbeddedLoader) List(kind Kind) ([]string, error) {
	return listNames(embedded, string(kind))
}

func (e *EmbeddedLoader) read(kind Kind, name string) ([]byte, error) {
	return embedded.ReadFile(string(kind) + "/" + name + assetExt)
}

// listNames returns the sorted base names of the .yaml files in dir.
func listNames(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), assetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), assetExt))
	}
	slices.Sort(names)
	return names, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
