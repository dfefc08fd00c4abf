package pipeline

import (
	"strings"

	"github.com/alnah/go-htmlcopy/internal/cssdecl"
	"github.com/alnah/go-htmlcopy/internal/fileutil"
	"github.com/alnah/go-htmlcopy/internal/htmlscan"
)

// Properties removed by the fixed strip actions.
var (
	backgroundProperties    = []string{"background", "background-color"}
	marginPaddingProperties = []string{
		"margin", "margin-left", "margin-right",
		"padding", "padding-left", "padding-right",
	}
)

// Settings holds the configuration shared by all actions.
type Settings struct {
	// StylesToRemove lists the properties stripped by StripConfiguredStyles.
	StylesToRemove []string

	// MarkStyle is merged into the style of spans converted from <mark>.
	MarkStyle string

	// Colors maps lower-case color tokens to their replacements.
	Colors map[string]string

	// FileExists reports whether a local path exists. Defaults to fileutil.Exists.
	FileExists func(path string) bool
}

// Rewriter applies individual rewrite actions to HTML strings.
// A Rewriter is immutable after creation and safe for concurrent use.
type Rewriter struct {
	markStyle  string
	colors     map[string]string
	fileExists func(string) bool

	background    *cssdecl.Remover
	marginPadding *cssdecl.Remover
	configured    *cssdecl.Remover
}

// NewRewriter creates a Rewriter from settings.
func NewRewriter(s Settings) *Rewriter {
	colors := make(map[string]string, len(s.Colors))
	for k, v := range s.Colors {
		colors[strings.ToLower(strings.TrimSpace(k))] = v
	}

	fileExists := s.FileExists
	if fileExists == nil {
		fileExists = fileutil.Exists
	}

	return &Rewriter{
		markStyle:     strings.TrimSpace(s.MarkStyle),
		colors:        colors,
		fileExists:    fileExists,
		background:    cssdecl.NewRemover(backgroundProperties...),
		marginPadding: cssdecl.NewRemover(marginPaddingProperties...),
		configured:    cssdecl.NewRemover(s.StylesToRemove...),
	}
}

// StripBackground removes background and background-color declarations from
// every tag outside the skipped ones.
func (r *Rewriter) StripBackground(html string, skip []string) (string, bool) {
	return rewriteStyles(html, skip, r.background.Remove)
}

// StripMarginPadding removes margin and padding declarations, including their
// left/right variants, from every tag outside the skipped ones.
func (r *Rewriter) StripMarginPadding(html string, skip []string) (string, bool) {
	return rewriteStyles(html, skip, r.marginPadding.Remove)
}

// StripConfiguredStyles removes the configured style properties from every
// tag outside the skipped ones.
func (r *Rewriter) StripConfiguredStyles(html string, skip []string) (string, bool) {
	return rewriteStyles(html, skip, r.configured.Remove)
}

// TranslateColors maps color declarations through the color mapping on every
// tag outside the skipped ones. background-color is never touched.
func (r *Rewriter) TranslateColors(html string, skip []string) (string, bool) {
	if len(r.colors) == 0 {
		return html, false
	}
	return rewriteStyles(html, skip, func(style string) (string, bool) {
		return cssdecl.TranslateColors(style, r.colors)
	})
}

// StripAllStyles drops the whole style attribute from every tag outside the
// skipped ones.
func (r *Rewriter) StripAllStyles(html string, skip []string) (string, bool) {
	ed := htmlscan.NewEditor(html)
	for tag := range htmlscan.Walk(html, skip) {
		if !tag.Styled {
			continue
		}
		rebuilt := tag.WithoutStyle()
		// A tag may carry several style attributes; strip them all.
		for {
			inner, ok := htmlscan.MatchStyledTag(rebuilt, 0)
			if !ok {
				break
			}
			rebuilt = inner.WithoutStyle()
		}
		ed.Replace(tag.Start, tag.End, rebuilt)
	}
	return ed.String(), ed.Changed()
}

// rewriteStyles walks the non-skipped styled tags of html and replaces each
// style value edit changes.
func rewriteStyles(html string, skip []string, edit func(style string) (string, bool)) (string, bool) {
	ed := htmlscan.NewEditor(html)
	for tag := range htmlscan.Walk(html, skip) {
		if !tag.Styled {
			continue
		}
		if style, changed := edit(tag.Style); changed {
			ed.Replace(tag.Start, tag.End, tag.Rebuild(style))
		}
	}
	return ed.String(), ed.Changed()
}
