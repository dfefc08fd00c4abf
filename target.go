package htmlcopy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Separators of the target definition syntax name$code(arg|arg):code.
const (
	nameSeparator   = "$"
	actionSeparator = ":"
	argSeparator    = "|"
)

// actionPattern matches one action piece.
// Captures: 1=code, 2=argument list (may be empty).
var actionPattern = regexp.MustCompile(`^([0-9a-zA-Z])(?:\(([^)]*)\))?$`)

// TargetDefinition is a named destination with its ordered actions.
type TargetDefinition struct {
	Name    string
	Actions []ActionSpec
}

// String renders the definition in configuration syntax.
func (t TargetDefinition) String() string {
	parts := make([]string, len(t.Actions))
	for i, a := range t.Actions {
		parts[i] = a.String()
	}
	return t.Name + nameSeparator + strings.Join(parts, actionSeparator)
}

// ParseTarget parses a definition of the form name$code(arg|arg):code.
// Action pieces that are malformed or name an unknown code are dropped;
// the returned error is non-nil only when the whole definition is rejected.
func ParseTarget(def string) (TargetDefinition, error) {
	return parseTarget(def, nil)
}

// ParseAction parses one action piece such as "b(mark|pre)".
// Arguments are lower-cased.
func ParseAction(piece string) (ActionSpec, error) {
	m := actionPattern.FindStringSubmatch(piece)
	if m == nil {
		return ActionSpec{}, fmt.Errorf("%w: %q", ErrMalformedAction, piece)
	}

	kind, ok := ParseActionCode(m[1][0])
	if !ok {
		return ActionSpec{}, fmt.Errorf("%w: %q", ErrUnknownAction, m[1])
	}

	spec := ActionSpec{Kind: kind}
	if m[2] != "" {
		spec.Args = strings.Split(strings.ToLower(m[2]), argSeparator)
	}
	return spec, nil
}

// parseTarget parses def, reporting each dropped action piece to onDrop.
func parseTarget(def string, onDrop func(piece string, err error)) (TargetDefinition, error) {
	parts := strings.Split(def, nameSeparator)
	if len(parts) != 2 {
		return TargetDefinition{}, fmt.Errorf("%w: %q", ErrMalformedTarget, def)
	}
	if parts[0] == "" {
		return TargetDefinition{}, fmt.Errorf("%w: %q", ErrEmptyTargetName, def)
	}

	t := TargetDefinition{Name: parts[0]}
	for _, piece := range strings.Split(parts[1], actionSeparator) {
		if piece == "" {
			continue
		}
		spec, err := ParseAction(piece)
		if err != nil {
			if onDrop != nil {
				onDrop(piece, err)
			}
			continue
		}
		t.Actions = append(t.Actions, spec)
	}

	if len(t.Actions) == 0 {
		return TargetDefinition{}, fmt.Errorf("%w: %q", ErrEmptyActionList, t.Name)
	}
	return t, nil
}

// ParseTargets parses every definition, keeping the valid ones in order.
// Rejected definitions, dropped actions and repeated names are logged at
// debug level and skipped.
func ParseTargets(defs []string, logger zerolog.Logger) []TargetDefinition {
	targets := make([]TargetDefinition, 0, len(defs))
	for _, def := range defs {
		t, err := parseTarget(def, func(piece string, err error) {
			logger.Debug().Str("definition", def).Str("action", piece).Err(err).Msg("dropping action")
		})
		if err != nil {
			logger.Debug().Str("definition", def).Err(err).Msg("dropping target")
			continue
		}
		if _, found := lookupTarget(targets, t.Name); found {
			logger.Debug().Str("definition", def).Err(ErrDuplicateTarget).Msg("dropping target")
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

// lookupTarget returns the index of the target with exactly the given name.
// Target lists are small, so a linear scan is enough.
func lookupTarget(targets []TargetDefinition, name string) (int, bool) {
	if name == "" {
		return -1, false
	}
	for i := range targets {
		if targets[i].Name == name {
			return i, true
		}
	}
	return -1, false
}
