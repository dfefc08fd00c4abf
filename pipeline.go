package htmlcopy

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/alnah/go-htmlcopy/internal/pipeline"
)

// Pipeline rewrites HTML for a named copy target.
// A Pipeline is immutable after New and safe for concurrent use.
type Pipeline struct {
	cfg       pipelineConfig
	logger    zerolog.Logger
	targets   []TargetDefinition
	rewriter  *pipeline.Rewriter
	sanitizer *pipeline.Sanitizer
	renderer  *pipeline.MarkdownRenderer
}

// New creates a Pipeline. Target definitions are parsed once here; invalid
// entries are logged and skipped, so New never fails.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}

	p.targets = ParseTargets(p.cfg.targets, p.logger)
	p.rewriter = pipeline.NewRewriter(pipeline.Settings{
		StylesToRemove: p.cfg.stylesToRemove,
		MarkStyle:      p.cfg.markStyle,
		Colors:         p.cfg.colors,
		FileExists:     p.cfg.fileExists,
	})
	if p.cfg.sanitize {
		p.sanitizer = pipeline.NewSanitizer()
	}
	p.renderer = pipeline.NewMarkdownRenderer(p.cfg.highlightStyle)

	p.logger.Info().Int("targets", len(p.targets)).Msg("copy targets initialized")
	return p
}

// TargetNames returns the target names in definition order.
func (p *Pipeline) TargetNames() []string {
	names := make([]string, len(p.targets))
	for i, t := range p.targets {
		names[i] = t.Name
	}
	return names
}

// Target returns the definition of the named target.
func (p *Pipeline) Target(name string) (TargetDefinition, bool) {
	i, ok := lookupTarget(p.targets, name)
	if !ok {
		return TargetDefinition{}, false
	}
	return p.targets[i], true
}

// Apply rewrites html for the named target and reports whether anything
// changed. Actions run in definition order, each on the previous output.
// An unknown target leaves html unchanged. base resolves relative image
// URLs; nil leaves them as they are.
func (p *Pipeline) Apply(base *url.URL, html, target string) (string, bool) {
	i, ok := lookupTarget(p.targets, target)
	if !ok {
		p.logger.Debug().Str("target", target).Msg("unknown target")
		return html, false
	}

	altered := false
	if p.sanitizer != nil {
		var changed bool
		if html, changed = p.sanitizer.Sanitize(html); changed {
			altered = true
		}
	}

	for _, action := range p.targets[i].Actions {
		var changed bool
		html, changed = p.applyAction(base, html, action)
		if changed {
			altered = true
			p.logger.Debug().Str("target", target).Stringer("action", action.Kind).Msg("action applied")
		}
	}
	return html, altered
}

// ApplyMarkdown renders Markdown to HTML, then applies the named target.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (p *Pipeline) ApplyMarkdown(ctx context.Context, base *url.URL, markdown, target string) (html string, changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	rendered, err := p.renderer.Render(ctx, markdown)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrMarkdownRender, err)
	}
	html, changed = p.Apply(base, rendered, target)
	return html, changed, nil
}

func (p *Pipeline) applyAction(base *url.URL, html string, a ActionSpec) (string, bool) {
	r := p.rewriter
	skip := a.SkipTags()

	switch a.Kind {
	case ActionWrapDocument:
		return r.WrapDocument(html)
	case ActionStripBackground:
		return r.StripBackground(html, skip)
	case ActionTranslateColors:
		return r.TranslateColors(html, skip)
	case ActionFixImageSources:
		return r.FixImageSources(base, html)
	case ActionStripMarginPadding:
		return r.StripMarginPadding(html, skip)
	case ActionStripConfiguredStyles:
		return r.StripConfiguredStyles(html, skip)
	case ActionStripAllStyles:
		return r.StripAllStyles(html, skip)
	case ActionMarkToSpan:
		return r.MarkToSpan(html)
	case ActionPreBackground:
		return r.PreBackgroundFromCode(html)
	default:
		return html, false
	}
}
