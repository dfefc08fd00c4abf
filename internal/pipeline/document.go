package pipeline

import "strings"

// documentOpen and documentClose form the minimal document shell.
const (
	documentOpen  = "<html><body>"
	documentClose = "</body></html>"
)

// WrapDocument wraps a fragment in a minimal <html><body> shell unless it
// already starts with <html>.
func (r *Rewriter) WrapDocument(html string) (string, bool) {
	if strings.HasPrefix(html, "<html>") {
		return html, false
	}
	return documentOpen + html + documentClose, true
}
