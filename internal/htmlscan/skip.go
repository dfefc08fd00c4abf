package htmlscan

import "strings"

// SkipToTagEnd returns the offset just past the end tag closing the element
// named tag, searching from offset from (which should be just inside its
// start tag). Same-named start tags met before the end tag are treated as
// nested and skipped first, so an inner </tag> does not close the outer one.
//
// When no end tag exists, from is returned with found set to false.
func SkipToTagEnd(s string, from int, tag string) (end int, found bool) {
	if tag == "" || from < 0 || from > len(s) {
		return from, false
	}

	closing := "</" + tag + ">"
	pos := from
	for {
		nEnd := strings.Index(s[pos:], closing)
		if nEnd == -1 {
			return from, false
		}
		nEnd += pos

		nBegin := indexOpening(s, pos, tag)
		if nBegin == -1 || nBegin > nEnd {
			return nEnd + len(closing), true
		}

		// Nested tag: skip its whole subtree, then look again.
		inner, ok := SkipToTagEnd(s, nBegin+len(tag)+1, tag)
		if !ok {
			return from, false
		}
		pos = inner
	}
}

// indexOpening finds the next "<tag" followed by whitespace, '>' or '/'.
func indexOpening(s string, from int, tag string) int {
	opening := "<" + tag
	pos := from
	for pos < len(s) {
		i := strings.Index(s[pos:], opening)
		if i == -1 {
			return -1
		}
		i += pos
		next := i + len(opening)
		if next < len(s) {
			switch s[next] {
			case ' ', '\t', '\n', '\r', '\f', '>', '/':
				return i
			}
		}
		pos = next
	}
	return -1
}
