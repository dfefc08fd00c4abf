package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	targetSet string
	assetPath string
	quiet     bool
	verbose   bool
}

// applyFlags holds all flags for the apply command.
type applyFlags struct {
	common    commonFlags
	target    string
	baseURL   string
	output    string
	workers   int
	palette   string
	sanitize  bool
	highlight string
}

// targetsFlags holds flags for the targets command.
type targetsFlags struct {
	common  commonFlags
	yaml    bool
	palette bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.targetSet, "target-set", "", "target preset name (overrides config)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
}

// parseApplyFlags parses apply command flags and returns positional args.
func parseApplyFlags(args []string, stderr io.Writer) (*applyFlags, []string, error) {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &applyFlags{}

	fs.StringVarP(&f.target, "target", "t", "", "copy target name")
	fs.StringVarP(&f.baseURL, "base-url", "b", "", "base URL or directory for relative images")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (default: stdout for one input)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.palette, "palette", "", "color palette name (overrides config)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "strip scripts and unsafe attributes first")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for Markdown code blocks")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printApplyUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTargetsFlags parses targets command flags.
func parseTargetsFlags(args []string, stderr io.Writer) (*targetsFlags, []string, error) {
	fs := flag.NewFlagSet("targets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &targetsFlags{}

	fs.BoolVar(&f.yaml, "yaml", false, "print the resolved target set as YAML")
	fs.BoolVar(&f.palette, "palettes", false, "list available palettes instead")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTargetsUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
