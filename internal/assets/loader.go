package assets

// AssetLoader defines the contract for loading palettes and target sets.
type AssetLoader interface {
	// LoadPalette loads a color palette by name (without .yaml extension).
	// Returns ErrPaletteNotFound if the palette doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadPalette(name string) (*Palette, error)

	// LoadTargetSet loads a target set by name (without .yaml extension).
	// Returns ErrTargetSetNotFound if the target set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTargetSet(name string) (*TargetSet, error)

	// List returns the sorted names of the assets of one kind.
	List(kind Kind) ([]string, error)
}
