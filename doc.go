// Package htmlcopy rewrites HTML copied from a rich-text editor so it pastes
// cleanly into a given destination application.
//
// # Quick Start
//
// Create a pipeline with the copy targets, then apply one by name:
//
//	p := htmlcopy.New(
//	    htmlcopy.WithTargets("Evernote$p:b(mark|pre):c(pre):m:a:x"),
//	    htmlcopy.WithColorMapping(map[string]string{"#24292e": "#000000"}),
//	    htmlcopy.WithMarkStyle("background: #ffff00; color: #000000;"),
//	)
//
//	html, changed := p.Apply(baseURL, fragment, "Evernote")
//
// Apply never fails: an unknown target, or input with nothing to rewrite,
// returns the fragment unchanged and false.
//
// # Target Definitions
//
// A target is written as name$code(arg|arg):code. Each code names one action:
//
//	s  wrap the fragment in <html><body> unless it starts with <html>
//	b  remove background and background-color declarations
//	c  translate color declarations through the color mapping
//	i  fix <img src> URLs (resolve relative, re-encode file:, local paths)
//	m  remove margin and padding declarations (plain, left, right)
//	x  remove the configured style properties (WithStylesToRemove)
//	r  remove whole style attributes
//	a  turn <mark> into <span> carrying the mark style (WithMarkStyle)
//	p  give <pre> the background of its child <code>
//
// For b, c, m, x and r the arguments are tag names whose subtree the action
// leaves alone. Arguments are lower-cased. Malformed actions and unknown codes
// are dropped while parsing; a definition without a name or without any valid
// action is dropped whole. Pass a logger with WithLogger to see why.
//
// Actions run in definition order, each on the output of the previous one.
//
// # Markdown
//
// ApplyMarkdown renders Markdown the way an editor preview would (GFM,
// ==highlight== as <mark>, inline-styled code highlighting) and then applies
// the target.
//
// # Concurrency
//
// A Pipeline is immutable once created and may be shared between goroutines.
package htmlcopy
