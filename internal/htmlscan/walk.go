package htmlscan

import (
	"iter"
	"slices"
	"strings"
)

// Walk lazily yields every start tag of s in document order, splitting styled
// tags into their captured parts. Tags whose lower-cased name is in skip are
// not yielded, and neither is anything up to their matching end tag.
//
// Each yielded match ends strictly after the previous one, so a walk over a
// finite string always terminates. A skipped tag without an end tag swallows
// the rest of the input.
func Walk(s string, skip []string) iter.Seq[TagMatch] {
	return func(yield func(TagMatch) bool) {
		pos := 0
		for pos < len(s) {
			tag, ok := FindTag(s, pos)
			if !ok {
				return
			}

			if len(skip) > 0 && slices.Contains(skip, strings.ToLower(tag.Name)) {
				end, found := SkipToTagEnd(s, tag.End, tag.Name)
				if !found {
					return
				}
				pos = end
				continue
			}

			if styled, ok := MatchStyledTag(s, tag.Start); ok {
				tag = styled
			}
			if !yield(tag) {
				return
			}
			pos = tag.End
		}
	}
}
