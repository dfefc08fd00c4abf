package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-htmlcopy"
	"github.com/alnah/go-htmlcopy/internal/assets"
	"github.com/alnah/go-htmlcopy/internal/config"
	"github.com/alnah/go-htmlcopy/internal/hints"
)

// resolvedSettings is everything a command needs once config, environment,
// flags and assets are merged.
type resolvedSettings struct {
	cfg       *config.Config
	targetSet *assets.TargetSet
	palette   *assets.Palette
	loader    assets.AssetLoader
}

// loadConfig loads the config named by the flag, else by HTMLCOPY_CONFIG,
// else the defaults, then applies environment and common flag overrides.
func loadConfig(flags *commonFlags, env *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if flags.targetSet != "" {
		cfg.TargetSet = flags.targetSet
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	return cfg, nil
}

// resolveAssets loads the target set and palette the config selects.
// Explicit config values replace the preset's, except colors, which are
// merged over the palette.
func resolveAssets(cfg *config.Config) (*resolvedSettings, error) {
	loader, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	ts, err := loader.LoadTargetSet(cfg.TargetSet)
	if err != nil {
		return nil, assetError("target set", err, loader, assets.KindTargetSet)
	}

	s := &resolvedSettings{cfg: cfg, targetSet: ts, loader: loader}

	paletteName := cfg.Palette
	if paletteName == "" {
		paletteName = ts.Palette
	}
	if paletteName != "" {
		if s.palette, err = loader.LoadPalette(paletteName); err != nil {
			return nil, assetError("palette", err, loader, assets.KindPalette)
		}
	}
	return s, nil
}

// assetError wraps a load failure, listing what exists when the name was wrong.
func assetError(what string, err error, loader assets.AssetLoader, kind assets.Kind) error {
	if errors.Is(err, assets.ErrPaletteNotFound) || errors.Is(err, assets.ErrTargetSetNotFound) {
		names, _ := loader.List(kind)
		return fmt.Errorf("loading %s: %w%s", what, err, hints.ForAssetNotFound(names))
	}
	return fmt.Errorf("loading %s: %w", what, err)
}

// targets returns the definitions in effect: the config's, else the preset's.
func (s *resolvedSettings) targets() []string {
	if len(s.cfg.Targets) > 0 {
		return s.cfg.Targets
	}
	return s.targetSet.Targets
}

func (s *resolvedSettings) stylesToRemove() []string {
	if len(s.cfg.StylesToRemove) > 0 {
		return s.cfg.StylesToRemove
	}
	return s.targetSet.StylesToRemove
}

func (s *resolvedSettings) markStyle() string {
	if s.cfg.MarkStyle != "" {
		return s.cfg.MarkStyle
	}
	return s.targetSet.MarkStyle
}

func (s *resolvedSettings) paletteName() string {
	if s.palette == nil {
		return ""
	}
	return s.palette.Name
}

// pipelineOptions turns the resolved settings into pipeline options.
func (s *resolvedSettings) pipelineOptions(logger zerolog.Logger) []htmlcopy.Option {
	return []htmlcopy.Option{
		htmlcopy.WithTargets(s.targets()...),
		htmlcopy.WithStylesToRemove(s.stylesToRemove()...),
		htmlcopy.WithMarkStyle(s.markStyle()),
		htmlcopy.WithColorMapping(s.palette.Merge(s.cfg.Colors)),
		htmlcopy.WithSanitizer(s.cfg.Sanitize),
		htmlcopy.WithHighlightStyle(s.cfg.HighlightStyle),
		htmlcopy.WithLogger(logger),
	}
}
