package htmlscan

import "regexp"

// Patterns are compiled once and shared by every scan.
var (
	// tagPattern matches a start tag.
	// Captures: 1=name, 2=text after the name up to '>'.
	tagPattern = regexp.MustCompile(`<([^>/\s]+)([^>]*)>`)

	// styledTagPattern matches a start tag carrying style="...".
	// Captures: 1=name, 2=text before style=, 3=style value, 4=text after the value up to '>'.
	styledTagPattern = regexp.MustCompile(`<([^>\s]+)([^>]*\s)style="([^">]+)"([^>]*)>`)

	// anchoredStyledTagPattern is styledTagPattern anchored at the start of input.
	anchoredStyledTagPattern = regexp.MustCompile(`^` + styledTagPattern.String())
)

// TagMatch describes one start tag found in a source string.
// Offsets are byte offsets into the scanned string.
type TagMatch struct {
	Start int
	End   int
	Name  string

	// Attrs is everything between the name and '>' (generic match).
	Attrs string

	// Styled reports whether the tag carries a style attribute.
	// Before, Style and After are only set when Styled is true.
	Styled bool
	Before string
	Style  string
	After  string
}

// Len returns the length of the matched tag.
func (m TagMatch) Len() int {
	return m.End - m.Start
}

// Rebuild renders the styled tag with style replaced by the given value.
func (m TagMatch) Rebuild(style string) string {
	return "<" + m.Name + m.Before + `style="` + style + `"` + m.After + ">"
}

// WithoutStyle renders the styled tag with its style attribute dropped.
func (m TagMatch) WithoutStyle() string {
	return "<" + m.Name + m.Before + m.After + ">"
}

// FindTag returns the leftmost start tag at or after from.
func FindTag(s string, from int) (TagMatch, bool) {
	if from < 0 || from >= len(s) {
		return TagMatch{}, false
	}
	loc := tagPattern.FindStringSubmatchIndex(s[from:])
	if loc == nil {
		return TagMatch{}, false
	}
	return TagMatch{
		Start: from + loc[0],
		End:   from + loc[1],
		Name:  s[from+loc[2] : from+loc[3]],
		Attrs: s[from+loc[4] : from+loc[5]],
	}, true
}

// FindStyledTag returns the leftmost start tag carrying a style attribute at
// or after from.
func FindStyledTag(s string, from int) (TagMatch, bool) {
	if from < 0 || from >= len(s) {
		return TagMatch{}, false
	}
	loc := styledTagPattern.FindStringSubmatchIndex(s[from:])
	if loc == nil {
		return TagMatch{}, false
	}
	return styledMatch(s, from, loc), true
}

// MatchStyledTag reports whether a styled start tag begins exactly at offset at.
func MatchStyledTag(s string, at int) (TagMatch, bool) {
	if at < 0 || at >= len(s) {
		return TagMatch{}, false
	}
	loc := anchoredStyledTagPattern.FindStringSubmatchIndex(s[at:])
	if loc == nil {
		return TagMatch{}, false
	}
	return styledMatch(s, at, loc), true
}

func styledMatch(s string, base int, loc []int) TagMatch {
	sub := func(i int) string {
		return s[base+loc[2*i] : base+loc[2*i+1]]
	}
	before := sub(2)
	return TagMatch{
		Start:  base + loc[0],
		End:    base + loc[1],
		Name:   sub(1),
		Attrs:  before + `style="` + sub(3) + `"` + sub(4),
		Styled: true,
		Before: before,
		Style:  sub(3),
		After:  sub(4),
	}
}
