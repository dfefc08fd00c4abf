package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownRender indicates Markdown rendering failed.
var ErrMarkdownRender = errors.New("markdown rendering failed")

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// MarkdownRenderer renders Markdown to the HTML fragment an editor preview
// would put on the clipboard.
type MarkdownRenderer struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
}

// NewMarkdownRenderer creates a MarkdownRenderer with GFM extensions and
// inline-styled syntax highlighting using the named chroma style.
// An empty style selects DefaultHighlightStyle.
func NewMarkdownRenderer(highlightStyle string) *MarkdownRenderer {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline style="" so copies carry their colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not used: ==highlight== goes through placeholders.
		),
	)
	return &MarkdownRenderer{
		md:           md,
		preprocessor: &CommonMarkPreprocessor{},
	}
}

// Render converts Markdown content to an HTML fragment, with ==text== rendered
// as <mark>text</mark>.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (m *MarkdownRenderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content = m.preprocessor.PreprocessMarkdown(ctx, content)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := m.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: ConvertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
