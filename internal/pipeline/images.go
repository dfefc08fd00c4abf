package pipeline

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-htmlcopy/internal/htmlscan"
)

// imageSrcPattern matches the start of an <img> tag whose first attribute is src.
// Captures: 1=URL.
// Fixed tags are written back as `<img  src=` so they never match again.
var imageSrcPattern = regexp.MustCompile(`<img src="([^"]+)"`)

// FixImageSources rewrites <img src="URL"> so the URL can be loaded outside
// the editor:
//   - relative URLs are resolved against base (left alone when base is nil)
//   - file: URLs are re-encoded
//   - URLs whose scheme is neither http nor https are turned into file: URLs
//     when they name an existing local path
//
// Anything else, including unparsable URLs, is left unchanged.
func (r *Rewriter) FixImageSources(base *url.URL, html string) (string, bool) {
	ed := htmlscan.NewEditor(html)
	for _, loc := range imageSrcPattern.FindAllStringSubmatchIndex(html, -1) {
		raw := html[loc[2]:loc[3]]
		fixed := r.fixImageURL(base, raw)
		if fixed == "" || fixed == raw {
			continue
		}
		ed.Replace(loc[0], loc[1], `<img  src="`+fixed+`"`)
	}
	return ed.String(), ed.Changed()
}

// fixImageURL returns the rewritten form of raw, or "" when it should stay.
func (r *Rewriter) fixImageURL(base *url.URL, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return r.localFileURL(raw)
	}

	switch {
	case !u.IsAbs():
		if base == nil {
			return ""
		}
		return base.ResolveReference(u).String()
	case strings.EqualFold(u.Scheme, "file"):
		return u.String()
	case strings.EqualFold(u.Scheme, "http"), strings.EqualFold(u.Scheme, "https"):
		return ""
	default:
		// Drive-letter paths such as C:/img.png parse with scheme "c".
		return r.localFileURL(raw)
	}
}

// localFileURL converts an existing local path to a file: URL.
func (r *Rewriter) localFileURL(path string) string {
	if !r.fileExists(path) {
		return ""
	}
	return pathToFileURL(path)
}

// pathToFileURL converts a path to a file:// URL.
// Handles both Unix and Windows paths correctly.
func pathToFileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	// filepath.ToSlash handles Windows backslashes
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{
		Scheme: "file",
		Path:   slashed,
	}
	return u.String()
}
