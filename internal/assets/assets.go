package assets

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alnah/go-htmlcopy/internal/yamlutil"
)

// Kind selects one of the asset directories.
type Kind string

const (
	KindPalette   Kind = "palettes"
	KindTargetSet Kind = "targets"
)

// assetExt is the extension of every palette and target set file.
const assetExt = ".yaml"

// Palette maps lower-cased color values found in copied markup to the
// colors that replace them.
type Palette struct {
	Name   string            `yaml:"-"`
	Colors map[string]string `yaml:"colors"`
}

// TargetSet is a preset of copy targets with the settings their actions read.
type TargetSet struct {
	Name           string   `yaml:"-"`
	Targets        []string `yaml:"targets"`
	StylesToRemove []string `yaml:"stylesToRemove,omitempty"`
	MarkStyle      string   `yaml:"markStyle,omitempty"`
	Palette        string   `yaml:"palette,omitempty"`
}

// Merge returns the palette colors overlaid with overrides. Keys of both
// maps are lower-cased; overrides win.
func (p *Palette) Merge(overrides map[string]string) map[string]string {
	out := make(map[string]string, len(overrides))
	if p != nil {
		for k, v := range p.Colors {
			out[strings.ToLower(k)] = v
		}
	}
	for k, v := range overrides {
		out[strings.ToLower(k)] = v
	}
	return out
}

// ColorKeys returns the palette's source colors in sorted order.
func (p *Palette) ColorKeys() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.Colors))
}

func decodePalette(name string, data []byte) (*Palette, error) {
	p := &Palette{}
	if err := yamlutil.UnmarshalStrict(data, p); err != nil {
		return nil, fmt.Errorf("%w: palette %q: %v", ErrInvalidAsset, name, err)
	}
	p.Name = name
	return p, nil
}

func decodeTargetSet(name string, data []byte) (*TargetSet, error) {
	ts := &TargetSet{}
	if err := yamlutil.UnmarshalStrict(data, ts); err != nil {
		return nil, fmt.Errorf("%w: target set %q: %v", ErrInvalidAsset, name, err)
	}
	if len(ts.Targets) == 0 {
		return nil, fmt.Errorf("%w: target set %q has no targets", ErrInvalidAsset, name)
	}
	ts.Name = name
	return ts, nil
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadPalette loads a palette by name using the default embedded loader.
func LoadPalette(name string) (*Palette, error) {
	return defaultLoader.LoadPalette(name)
}

// LoadTargetSet loads a target set by name using the default embedded loader.
func LoadTargetSet(name string) (*TargetSet, error) {
	return defaultLoader.LoadTargetSet(name)
}
