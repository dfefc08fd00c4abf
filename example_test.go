package htmlcopy_test

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alnah/go-htmlcopy"
)

// Example demonstrates rewriting a copied fragment for a target.
func Example() {
	p := htmlcopy.New(htmlcopy.WithTargets("Raw HTML$r"))

	html, changed := p.Apply(nil, `<p style="color: red;">Hello</p>`, "Raw HTML")
	fmt.Println(html, changed)
	// Output: <p >Hello</p> true
}

// Example_colors demonstrates color translation with a skip list.
func Example_colors() {
	p := htmlcopy.New(
		htmlcopy.WithTargets("Dark$c(pre)"),
		htmlcopy.WithColorMapping(map[string]string{"#333": "#ddd"}),
	)

	html, _ := p.Apply(nil, `<p style="color: #333;">a</p><pre style="color: #333;">b</pre>`, "Dark")
	fmt.Println(html)
	// Output: <p style="color : #ddd;">a</p><pre style="color: #333;">b</pre>
}

// Example_images demonstrates resolving relative image sources.
func Example_images() {
	p := htmlcopy.New(htmlcopy.WithTargets("Word$i"))
	base, _ := url.Parse("file:///home/me/notes/")

	html, _ := p.Apply(base, `<img src="img/diagram.png">`, "Word")
	fmt.Println(html)
	// Output: <img  src="file:///home/me/notes/img/diagram.png">
}

// Example_markdown demonstrates applying a target to Markdown input.
func Example_markdown() {
	p := htmlcopy.New(
		htmlcopy.WithTargets("OneNote$a"),
		htmlcopy.WithMarkStyle("background: yellow"),
	)

	html, _, err := p.ApplyMarkdown(context.Background(), nil, "Read ==this== first.", "OneNote")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(html)
	// Output: <p>Read <span style="background: yellow" >this</span> first.</p>
}

// ExampleParseTarget demonstrates parsing a target definition.
// Unknown action codes are dropped.
func ExampleParseTarget() {
	t, err := htmlcopy.ParseTarget("Word$s:b(MARK|pre):z:c")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t.Name)
	for _, a := range t.Actions {
		fmt.Println(a.Kind, a.Args)
	}
	// Output:
	// Word
	// wrap-document []
	// strip-background [mark pre]
	// translate-colors []
}

// ExamplePipeline_TargetNames demonstrates listing targets in definition order.
func ExamplePipeline_TargetNames() {
	p := htmlcopy.New(htmlcopy.WithTargets(
		"Without Background$s:b(mark):c:i:x",
		"$b",
		"Raw HTML$r:x",
	))
	fmt.Println(p.TargetNames())
	// Output: [Without Background Raw HTML]
}
