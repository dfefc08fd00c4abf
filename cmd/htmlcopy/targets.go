package main

import (
	"fmt"

	"github.com/alnah/go-htmlcopy"
	"github.com/alnah/go-htmlcopy/internal/assets"
	"github.com/alnah/go-htmlcopy/internal/yamlutil"
)

// runTargets lists the targets in effect, in registry order.
// With --yaml it prints the resolved target set instead, normalized so it can
// be saved as a custom asset.
func runTargets(args []string, env *Environment) error {
	flags, _, err := parseTargetsFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	cfg, err := loadConfig(&flags.common, envCfg)
	if err != nil {
		return err
	}
	settings, err := resolveAssets(cfg)
	if err != nil {
		return err
	}

	if flags.palette {
		names, err := settings.loader.List(assets.KindPalette)
		if err != nil {
			return fmt.Errorf("listing palettes: %w", err)
		}
		for _, name := range names {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	p := htmlcopy.New(settings.pipelineOptions(logger)...)

	if !flags.yaml {
		for _, name := range p.TargetNames() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	out := assets.TargetSet{
		StylesToRemove: settings.stylesToRemove(),
		MarkStyle:      settings.markStyle(),
		Palette:        settings.paletteName(),
	}
	for _, name := range p.TargetNames() {
		def, _ := p.Target(name)
		out.Targets = append(out.Targets, def.String())
	}
	data, err := yamlutil.Marshal(out)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
