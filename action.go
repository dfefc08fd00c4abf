package htmlcopy

import "strings"

// ActionKind identifies one rewrite action of the catalog.
// The set is closed: configuration codes outside it are dropped at parse time.
type ActionKind int

// Catalog of rewrite actions, with their configuration codes.
const (
	ActionWrapDocument          ActionKind = iota + 1 // s
	ActionStripBackground                             // b
	ActionTranslateColors                             // c
	ActionFixImageSources                             // i
	ActionStripMarginPadding                          // m
	ActionStripConfiguredStyles                       // x
	ActionStripAllStyles                              // r
	ActionMarkToSpan                                  // a
	ActionPreBackground                               // p
)

type actionInfo struct {
	code  byte
	name  string
	skips bool // arguments are tag names to skip
}

var actionTable = map[ActionKind]actionInfo{
	ActionWrapDocument:          {'s', "wrap-document", false},
	ActionStripBackground:       {'b', "strip-background", true},
	ActionTranslateColors:       {'c', "translate-colors", true},
	ActionFixImageSources:       {'i', "fix-image-sources", false},
	ActionStripMarginPadding:    {'m', "strip-margin-padding", true},
	ActionStripConfiguredStyles: {'x', "strip-configured-styles", true},
	ActionStripAllStyles:        {'r', "strip-all-styles", true},
	ActionMarkToSpan:            {'a', "mark-to-span", false},
	ActionPreBackground:         {'p', "pre-background", false},
}

// ActionKinds returns every action kind in catalog order.
func ActionKinds() []ActionKind {
	return []ActionKind{
		ActionWrapDocument,
		ActionStripBackground,
		ActionTranslateColors,
		ActionFixImageSources,
		ActionStripMarginPadding,
		ActionStripConfiguredStyles,
		ActionStripAllStyles,
		ActionMarkToSpan,
		ActionPreBackground,
	}
}

// ParseActionCode maps a configuration code to its action kind.
func ParseActionCode(code byte) (ActionKind, bool) {
	for kind, info := range actionTable {
		if info.code == code {
			return kind, true
		}
	}
	return 0, false
}

// Code returns the configuration code of the action, or 0 for an invalid kind.
func (k ActionKind) Code() byte {
	return actionTable[k].code
}

// String returns the descriptive name of the action.
func (k ActionKind) String() string {
	if info, ok := actionTable[k]; ok {
		return info.name
	}
	return "unknown"
}

// SkipsTags reports whether the action's arguments are tag names to skip.
func (k ActionKind) SkipsTags() bool {
	return actionTable[k].skips
}

// ActionSpec is one configured action: its kind and lower-cased arguments.
type ActionSpec struct {
	Kind ActionKind
	Args []string
}

// SkipTags returns the tag names the action must leave alone, or nil for
// actions that take no skip list.
func (a ActionSpec) SkipTags() []string {
	if !a.Kind.SkipsTags() {
		return nil
	}
	return a.Args
}

// String renders the action in configuration syntax, e.g. "b(mark|pre)".
func (a ActionSpec) String() string {
	code := string(a.Kind.Code())
	if len(a.Args) == 0 {
		return code
	}
	return code + "(" + strings.Join(a.Args, "|") + ")"
}
