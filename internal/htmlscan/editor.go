package htmlscan

import "strings"

// Editor accumulates replacements over an unmodified source string.
// Replacements are addressed in source coordinates and must be added in
// increasing, non-overlapping order; the result is built once by String.
type Editor struct {
	src     string
	out     strings.Builder
	last    int
	changed bool
}

// NewEditor creates an Editor over src.
func NewEditor(src string) *Editor {
	return &Editor{src: src}
}

// Replace substitutes src[start:end] with text. Spans overlapping an earlier
// replacement or out of range are ignored and reported with false.
func (e *Editor) Replace(start, end int, text string) bool {
	if start < e.last || end < start || end > len(e.src) {
		return false
	}
	if e.src[start:end] == text {
		return true
	}
	e.out.WriteString(e.src[e.last:start])
	e.out.WriteString(text)
	e.last = end
	e.changed = true
	return true
}

// Changed reports whether any replacement altered the source.
func (e *Editor) Changed() bool {
	return e.changed
}

// String returns the source with all replacements applied.
func (e *Editor) String() string {
	if !e.changed {
		return e.src
	}
	var b strings.Builder
	b.Grow(e.out.Len() + len(e.src) - e.last)
	b.WriteString(e.out.String())
	b.WriteString(e.src[e.last:])
	return b.String()
}
