// Package cssdecl edits the text of an inline style attribute declaration by
// declaration, treating values as opaque text between ':' and ';'.
package cssdecl

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// colorPattern matches a color declaration that is not the tail of another
// property such as background-color.
// Captures: 1=leading whitespace or empty, 2=value.
var colorPattern = regexp.MustCompile(`(\s|^)color:([^;]+);`)

// Remover deletes declarations of a fixed set of properties.
// The zero value and a nil Remover remove nothing.
type Remover struct {
	re *regexp.Regexp
}

// NewRemover compiles a Remover for the given property names.
// Names are matched case-sensitively, as authored.
func NewRemover(properties ...string) *Remover {
	var names []string
	for _, p := range properties {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, regexp.QuoteMeta(p))
		}
	}
	if len(names) == 0 {
		return &Remover{}
	}
	return &Remover{
		re: regexp.MustCompile(`(\s|^)(` + strings.Join(names, "|") + `):[^:]+;`),
	}
}

// Remove deletes every "prop: value;" declaration of the Remover's
// properties. Declarations missing the trailing ';' are left alone.
// Removal repeats until nothing matches, so the result is stable.
func (r *Remover) Remove(style string) (string, bool) {
	if r == nil || r.re == nil {
		return style, false
	}
	out := style
	for {
		next := r.re.ReplaceAllString(out, "")
		if len(next) == len(out) {
			break
		}
		out = next
	}
	return out, len(out) != len(style)
}

// RemoveProperties is a one-shot form of NewRemover(properties...).Remove.
func RemoveProperties(style string, properties []string) (string, bool) {
	return NewRemover(properties...).Remove(style)
}

// TranslateColors rewrites "color: X;" declarations whose trimmed, lower-cased
// value is a key of mapping. Rewritten declarations read "color : Y;" so they
// no longer match the color pattern.
func TranslateColors(style string, mapping map[string]string) (string, bool) {
	if len(mapping) == 0 {
		return style, false
	}

	locs := colorPattern.FindAllStringSubmatchIndex(style, -1)
	if locs == nil {
		return style, false
	}

	var b strings.Builder
	last := 0
	changed := false
	for _, loc := range locs {
		value := strings.ToLower(strings.TrimSpace(style[loc[4]:loc[5]]))
		mapped, ok := mapping[value]
		if !ok {
			continue
		}
		b.WriteString(style[last:loc[0]])
		b.WriteString(style[loc[2]:loc[3]])
		b.WriteString("color : ")
		b.WriteString(mapped)
		b.WriteString(";")
		last = loc[1]
		changed = true
	}
	if !changed {
		return style, false
	}
	b.WriteString(style[last:])
	return b.String(), true
}

// Append adds extra declarations after the existing ones, inserting a
// separating ';' when the existing text does not end with one.
func Append(style, extra string) string {
	base := strings.TrimRight(style, " \t\r\n")
	extra = strings.TrimSpace(extra)
	switch {
	case base == "":
		return extra
	case extra == "":
		return style
	case !strings.HasSuffix(base, ";"):
		base += ";"
	}
	return base + " " + extra
}

// Lookup returns the value of the last declaration of property in style.
// The property name is compared case-insensitively; !important is dropped.
func Lookup(style, property string) (string, bool) {
	// The parser only assigns a value once it sees the terminating ';'.
	style = strings.TrimSpace(style)
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	// Declarations parsed before a syntax error are still usable.
	decls, _ := parser.ParseDeclarations(style)
	value, found := "", false
	for _, d := range decls {
		if strings.EqualFold(d.Property, property) {
			value, found = strings.TrimSpace(d.Value), true
		}
	}
	return value, found
}

// Set replaces every declaration of the given properties with a single
// "property: value;" declaration appended at the end.
func Set(style, property, value string, replaces ...string) string {
	cleared, _ := NewRemover(append([]string{property}, replaces...)...).Remove(style)
	return Append(cleared, property+": "+value+";")
}
