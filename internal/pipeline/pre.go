package pipeline

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-htmlcopy/internal/cssdecl"
	"github.com/alnah/go-htmlcopy/internal/htmlscan"
)

// PreBackgroundFromCode gives every <pre> whose first child element is a
// <code> with a background the same background-color, so the block keeps one
// color once the destination renders <pre> padding.
//
// The walk uses the html tokenizer rather than the tag scanner: only the
// token order around <pre> matters, and offsets come from the raw token
// lengths so the rewrite still happens on the original text.
func (r *Rewriter) PreBackgroundFromCode(src string) (string, bool) {
	if src == "" {
		return src, false
	}

	ed := htmlscan.NewEditor(src)
	z := html.NewTokenizer(strings.NewReader(src))

	offset := 0
	preStart, preEnd := -1, -1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "pre":
				preStart, preEnd = start, offset
				continue
			case "code":
				if preStart >= 0 && hasAttr {
					if bg := codeBackground(z); bg != "" {
						ed.Replace(preStart, preEnd, withBackground(src[preStart:preEnd], bg))
					}
				}
			}
		case html.TextToken:
			if preStart >= 0 && strings.TrimSpace(src[start:offset]) == "" {
				continue
			}
		}
		preStart, preEnd = -1, -1
	}

	return ed.String(), ed.Changed()
}

// codeBackground reads the background color declared in the current token's
// style attribute.
func codeBackground(z *html.Tokenizer) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "style" {
			style := string(val)
			if bg, ok := cssdecl.Lookup(style, "background-color"); ok && bg != "" {
				return bg
			}
			if bg, ok := cssdecl.Lookup(style, "background"); ok && bg != "" {
				return bg
			}
		}
		if !more {
			return ""
		}
	}
}

// withBackground sets background-color on a raw <pre ...> start tag.
func withBackground(tag, bg string) string {
	if m, ok := htmlscan.MatchStyledTag(tag, 0); ok {
		cur, _ := cssdecl.Lookup(m.Style, "background-color")
		if _, shorthand := cssdecl.Lookup(m.Style, "background"); cur == bg && !shorthand {
			return tag
		}
		return m.Rebuild(cssdecl.Set(m.Style, "background-color", bg, "background"))
	}
	// "<pre" is followed by attributes or '>'.
	const name = "<pre"
	if len(tag) < len(name) {
		return tag
	}
	return tag[:len(name)] + ` style="background-color: ` + bg + `;"` + tag[len(name):]
}
