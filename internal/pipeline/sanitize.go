package pipeline

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips scripts, event handlers and unsafe URLs from HTML while
// keeping the presentational attributes the copy actions work on.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer based on bluemonday's UGC policy, extended
// to keep style and class attributes, <mark> and file: image sources.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style", "class").Globally()
	p.AllowElements("mark", "span", "div")
	p.AllowURLSchemes("http", "https", "mailto", "file")
	p.AllowDataURIImages()
	return &Sanitizer{policy: p}
}

// Sanitize returns the sanitized form of html and whether it differs.
func (s *Sanitizer) Sanitize(html string) (string, bool) {
	out := s.policy.Sanitize(html)
	return out, out != html
}
