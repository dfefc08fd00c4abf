package htmlcopy

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}
	return u
}

// ---------------------------------------------------------------------------
// TestNew - Registry initialization
// ---------------------------------------------------------------------------

func TestNew_RejectsInvalidDefinitions(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("$b:c", "name$", "ok$b"))

	if got := p.TargetNames(); !slices.Equal(got, []string{"ok"}) {
		t.Errorf("TargetNames() = %v, want [ok]", got)
	}
}

func TestNew_TargetNamesKeepOrder(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("Web Editor$s:m", "Raw HTML$r"),
		WithTargets("Evernote$b"),
	)

	want := []string{"Web Editor", "Raw HTML", "Evernote"}
	if got := p.TargetNames(); !slices.Equal(got, want) {
		t.Errorf("TargetNames() = %v, want %v", got, want)
	}

	tgt, ok := p.Target("Raw HTML")
	if !ok || tgt.String() != "Raw HTML$r" {
		t.Errorf("Target(%q) = %v, %v", "Raw HTML", tgt, ok)
	}
}

// ---------------------------------------------------------------------------
// TestApply - Pipeline driver
// ---------------------------------------------------------------------------

func TestApply_UnknownTarget(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("Raw HTML$r"))
	input := `<p style="color: red;">x</p>`

	for _, name := range []string{"", "raw html", "Missing"} {
		got, changed := p.Apply(nil, input, name)
		if got != input || changed {
			t.Errorf("Apply(%q) = %q, %v; want unchanged", name, got, changed)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("strip$b:m:x", "raw$r(pre)", "mixed$b(pre):m:x:r(table)"),
		WithStylesToRemove("font-family", "line-height"),
	)

	inputs := []string{
		`<p style="background: red; margin: 0; font-family: Arial; color: blue;">x</p>`,
		`<div style="padding:1px;margin:2px;background-color:#fff;">y</div>`,
		`<pre style="background: #eee;"><code style="line-height: 2;">z</code></pre><table style="margin: 0;"></table>`,
		`<p style="a: 1;" style="background: red;">w</p>`,
	}

	for _, target := range p.TargetNames() {
		for _, input := range inputs {
			once, _ := p.Apply(nil, input, target)
			twice, changed := p.Apply(nil, once, target)
			if twice != once || changed {
				t.Errorf("target %q not idempotent on %q:\nonce:  %q\ntwice: %q", target, input, once, twice)
			}
		}
	}
}

func TestApply_SkipListLeavesSubtreeAlone(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("skip$b(pre):c(pre):m(pre):x(pre):r(pre)"),
		WithStylesToRemove("font-family"),
		WithColorMapping(map[string]string{"red": "#ff0000"}),
	)

	skipped := `<pre style="background: red; margin: 0; font-family: Arial; color: red;">` +
		`<pre style="color: red;">inner</pre>` +
		`<span style="background: blue; padding: 1px;">x</span>` +
		`</pre>`
	input := skipped + `<p style="background: red; color: red;">z</p>`

	got, changed := p.Apply(nil, input, "skip")
	if !changed {
		t.Fatal("Apply() reported no change")
	}
	if !strings.HasPrefix(got, skipped) {
		t.Errorf("skipped subtree altered:\ngot:  %q\nwant prefix %q", got, skipped)
	}
	if want := skipped + `<p >z</p>`; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApply_Terminates(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("all$s:b(div):c:i:m:x:r(pre):a:p"),
		WithStylesToRemove("color"),
		WithColorMapping(map[string]string{"red": "blue"}),
		WithMarkStyle("background: yellow"),
	)

	depth := 300
	inputs := []string{
		"",
		"<",
		"<>",
		"<<<>>>",
		`<p style="`,
		`<div style="margin: 0;">`,
		`<pre><p style="color: red;">unterminated`,
		strings.Repeat(`<div style="background: red;">`, depth) + strings.Repeat(`</div>`, depth),
		strings.Repeat(`<pre style="margin: 0;">`, depth) + "x" + strings.Repeat(`</pre>`, depth),
		strings.Repeat(`<mark style="color: red;">`, depth),
		strings.Repeat(`<img src="a.png">`, depth),
	}

	base := mustParseURL(t, "file:///docs/")
	for _, input := range inputs {
		once, _ := p.Apply(base, input, "all")
		if len(input) > 0 && once == "" {
			t.Errorf("Apply(%q) returned empty output", input)
		}
	}
}

func TestApply_StopsAtUnterminatedSkippedTag(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("t$b(pre)"))
	input := `<p style="background: red;">a</p><pre><p style="background: red;">b</p>`

	got, changed := p.Apply(nil, input, "t")
	want := `<p style="">a</p><pre><p style="background: red;">b</p>`
	if got != want || !changed {
		t.Errorf("Apply() = %q, %v; want %q, true", got, changed, want)
	}
}

func TestApply_TranslateColors(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("c$c"),
		WithColorMapping(map[string]string{"red": "#ff0000"}),
	)

	got, changed := p.Apply(nil, `<p style="color: red;">x</p>`, "c")
	if !changed || !strings.Contains(got, "color : #ff0000;") {
		t.Errorf("Apply() = %q, %v; want color : #ff0000; and changed", got, changed)
	}

	input := `<p style="color: blue;">x</p>`
	if got, changed := p.Apply(nil, input, "c"); changed || got != input {
		t.Errorf("Apply() = %q, %v; want unchanged", got, changed)
	}
}

func TestApply_BackgroundAndColorsIndependent(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("bc$b:c", "cb$c:b", "c$c"),
		WithColorMapping(map[string]string{"#fff": "#000"}),
	)
	input := `<p style="background-color: #fff; color: #fff;">x</p>`

	bc, _ := p.Apply(nil, input, "bc")
	cb, _ := p.Apply(nil, input, "cb")
	want := `<p style=" color : #000;">x</p>`
	if bc != want || cb != want {
		t.Errorf("b:c = %q, c:b = %q, want %q", bc, cb, want)
	}

	c, _ := p.Apply(nil, input, "c")
	if !strings.Contains(c, "background-color: #fff;") {
		t.Errorf("c alone = %q, background-color must survive", c)
	}
}

func TestApply_MarkToSpan(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("a$a"), WithMarkStyle("background: yellow"))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no existing style",
			input: `<mark>text</mark>`,
			want:  `<span style="background: yellow" >text</span>`,
		},
		{
			name:  "existing style",
			input: `<mark class="x" style="color:red;">text</mark>`,
			want:  `<span class="x" style="color:red; background: yellow">text</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := p.Apply(nil, tt.input, "a")
			if got != tt.want || !changed {
				t.Errorf("Apply() = %q, %v; want %q, true", got, changed, tt.want)
			}
		})
	}
}

func TestApply_ImageSources(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("i$i"), WithFileChecker(func(string) bool { return false }))
	base := mustParseURL(t, "file:///docs/")

	got, changed := p.Apply(base, `<img src="a.png">`, "i")
	if !changed || !strings.Contains(got, `src="file:///docs/a.png"`) {
		t.Errorf("Apply() = %q, %v; want file:///docs/a.png", got, changed)
	}

	input := `<img src="http://x/y.png">`
	if got, changed := p.Apply(base, input, "i"); got != input || changed {
		t.Errorf("Apply() = %q, %v; want unchanged", got, changed)
	}
}

func TestApply_OrderMatters(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("ra$r:a", "ar$a:r"),
		WithMarkStyle("background: yellow"),
	)
	input := `<mark>x</mark>`

	ra, _ := p.Apply(nil, input, "ra")
	if ra != `<span style="background: yellow" >x</span>` {
		t.Errorf("r then a = %q, want styled span", ra)
	}
	ar, _ := p.Apply(nil, input, "ar")
	if ar != `<span  >x</span>` {
		t.Errorf("a then r = %q, want unstyled span", ar)
	}
}

func TestApply_WrapDocument(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("s$s"))
	got, changed := p.Apply(nil, "<p>x</p>", "s")
	if got != "<html><body><p>x</p></body></html>" || !changed {
		t.Errorf("Apply() = %q, %v", got, changed)
	}
	if _, changed := p.Apply(nil, got, "s"); changed {
		t.Error("second Apply() reported a change")
	}
}

func TestApply_Sanitizer(t *testing.T) {
	t.Parallel()

	input := `<p style="color: red;" onclick="x()">a</p><script>alert(1)</script>`

	plain := New(WithTargets("raw$r"))
	got, _ := plain.Apply(nil, input, "raw")
	if !strings.Contains(got, "<script>") {
		t.Errorf("Apply() without sanitizer = %q, script should be kept", got)
	}

	safe := New(WithTargets("raw$r"), WithSanitizer(true))
	got, changed := safe.Apply(nil, input, "raw")
	if !changed || strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Errorf("Apply() with sanitizer = %q, %v", got, changed)
	}
}

func TestApply_Concurrent(t *testing.T) {
	t.Parallel()

	p := New(
		WithTargets("t$b:c:m:a"),
		WithColorMapping(map[string]string{"red": "blue"}),
		WithMarkStyle("background: yellow"),
	)
	input := `<p style="background: red; color: red; margin: 0;"><mark>x</mark></p>`
	want, _ := p.Apply(nil, input, "t")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, _ := p.Apply(nil, input, "t"); got != want {
				t.Errorf("concurrent Apply() = %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// TestApplyMarkdown - Markdown input
// ---------------------------------------------------------------------------

func TestApplyMarkdown(t *testing.T) {
	t.Parallel()

	p := New(WithTargets("web$s:a"), WithMarkStyle("background: yellow"))

	got, changed, err := p.ApplyMarkdown(context.Background(), nil, "Some ==hot== text\n", "web")
	if err != nil {
		t.Fatalf("ApplyMarkdown() error = %v", err)
	}
	if !changed {
		t.Error("ApplyMarkdown() reported no change")
	}
	for _, want := range []string{"<html><body>", `<span style="background: yellow" >hot</span>`} {
		if !strings.Contains(got, want) {
			t.Errorf("ApplyMarkdown() = %q, want it to contain %q", got, want)
		}
	}
}

func TestApplyMarkdown_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New().ApplyMarkdown(ctx, nil, "# x", "any")
	if !errors.Is(err, ErrMarkdownRender) || !errors.Is(err, context.Canceled) {
		t.Errorf("ApplyMarkdown() error = %v, want ErrMarkdownRender wrapping context.Canceled", err)
	}
}
