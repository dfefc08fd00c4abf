package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-htmlcopy/internal/cssdecl"
	"github.com/alnah/go-htmlcopy/internal/htmlscan"
)

// markEndPattern matches a </mark> end tag in any letter case.
var markEndPattern = regexp.MustCompile(`(?i)</mark\s*>`)

// MarkToSpan converts every <mark> element to a <span> carrying the configured
// mark style, so destinations that drop <mark> keep the highlight.
// The mark style is appended to an existing style attribute, or injected as a
// new one. End tags are converted only when at least one start tag was.
func (r *Rewriter) MarkToSpan(html string) (string, bool) {
	ed := htmlscan.NewEditor(html)
	for tag := range htmlscan.Walk(html, nil) {
		if !strings.EqualFold(tag.Name, "mark") {
			continue
		}
		ed.Replace(tag.Start, tag.End, r.markSpan(tag))
	}
	if !ed.Changed() {
		return html, false
	}
	return markEndPattern.ReplaceAllString(ed.String(), "</span>"), true
}

func (r *Rewriter) markSpan(tag htmlscan.TagMatch) string {
	if tag.Styled {
		return "<span" + tag.Before + `style="` + cssdecl.Append(tag.Style, r.markStyle) + `"` + tag.After + ">"
	}
	if r.markStyle == "" {
		return "<span" + tag.Attrs + ">"
	}
	return `<span style="` + r.markStyle + `" ` + strings.TrimLeft(tag.Attrs, " \t\r\n") + ">"
}
