package htmlcopy

import (
	"maps"

	"github.com/rs/zerolog"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// pipelineConfig collects option values before the Pipeline is assembled.
type pipelineConfig struct {
	targets        []string
	stylesToRemove []string
	markStyle      string
	colors         map[string]string
	fileExists     func(string) bool
	sanitize       bool
	highlightStyle string
}

// WithTargets sets the target definitions, in name$code(args):code syntax.
// Later calls append.
func WithTargets(defs ...string) Option {
	return func(p *Pipeline) {
		p.cfg.targets = append(p.cfg.targets, defs...)
	}
}

// WithStylesToRemove sets the style properties removed by action x.
func WithStylesToRemove(props ...string) Option {
	return func(p *Pipeline) {
		p.cfg.stylesToRemove = append([]string(nil), props...)
	}
}

// WithMarkStyle sets the declarations merged into spans converted from <mark>.
func WithMarkStyle(style string) Option {
	return func(p *Pipeline) {
		p.cfg.markStyle = style
	}
}

// WithColorMapping sets the color mapping used by action c.
// Keys are matched case-insensitively against trimmed color values.
func WithColorMapping(colors map[string]string) Option {
	return func(p *Pipeline) {
		p.cfg.colors = maps.Clone(colors)
	}
}

// WithFileChecker replaces the filesystem existence check used by action i.
func WithFileChecker(exists func(path string) bool) Option {
	return func(p *Pipeline) {
		p.cfg.fileExists = exists
	}
}

// WithSanitizer enables sanitizing the HTML before a target's actions run.
func WithSanitizer(enabled bool) Option {
	return func(p *Pipeline) {
		p.cfg.sanitize = enabled
	}
}

// WithHighlightStyle sets the chroma style used for code blocks in Markdown input.
func WithHighlightStyle(name string) Option {
	return func(p *Pipeline) {
		p.cfg.highlightStyle = name
	}
}

// WithLogger sets the logger used for diagnostics. The default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
