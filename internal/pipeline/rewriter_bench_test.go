//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkRewriterActions benchmarks each style action on a rendered note.
func BenchmarkRewriterActions(b *testing.B) {
	r := NewRewriter(Settings{
		StylesToRemove: []string{"font-family", "line-height"},
		MarkStyle:      "background: yellow",
		Colors:         map[string]string{"#24292e": "#000000"},
	})
	html := generateStyledHTML(100)

	actions := []struct {
		name string
		fn   func(string) (string, bool)
	}{
		{"b", func(s string) (string, bool) { return r.StripBackground(s, []string{"pre"}) }},
		{"m", func(s string) (string, bool) { return r.StripMarginPadding(s, nil) }},
		{"x", func(s string) (string, bool) { return r.StripConfiguredStyles(s, nil) }},
		{"c", func(s string) (string, bool) { return r.TranslateColors(s, nil) }},
		{"r", func(s string) (string, bool) { return r.StripAllStyles(s, []string{"pre"}) }},
		{"a", r.MarkToSpan},
		{"p", r.PreBackgroundFromCode},
	}

	for _, a := range actions {
		b.Run(a.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = a.fn(html)
			}
		})
	}
}

// BenchmarkMarkdownRender benchmarks Markdown rendering with highlighting.
func BenchmarkMarkdownRender(b *testing.B) {
	m := NewMarkdownRenderer("")
	ctx := context.Background()

	for _, size := range []int{1, 10, 100} {
		content := generateMarkdown(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := m.Render(ctx, content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Helper functions for generating benchmark input

func generateStyledHTML(sections int) string {
	var sb strings.Builder
	for i := 0; i < sections; i++ {
		sb.WriteString(`<h2 style="margin: 0; color: #24292e; font-family: Arial;">Section</h2>`)
		sb.WriteString(`<p style="line-height: 1.5; background-color: #fff; padding-left: 2px;">Text with <mark>highlight</mark>.</p>`)
		sb.WriteString(`<pre><code style="background-color: #f6f8fa; color: #24292e;">x := 1</code></pre>`)
	}
	return sb.String()
}

func generateMarkdown(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Document Title\n\n")
	for i := 0; i < sections; i++ {
		sb.WriteString(fmt.Sprintf("## Section %d\n\n", i+1))
		sb.WriteString("A paragraph with ==highlighted== words and `inline code`.\n\n")
		if i%3 == 0 {
			sb.WriteString("```go\nfunc main() {\n    fmt.Println(\"Hello\")\n}\n```\n\n")
		}
	}
	return sb.String()
}
