package htmlcopy

import "errors"

// Sentinel errors for target definition parsing.
// Parsing never fails a Pipeline: rejected definitions and dropped actions are
// logged and skipped. The errors are exported for tooling that validates
// definitions up front.
var (
	ErrMalformedTarget = errors.New("target definition must have the form name$actions")
	ErrEmptyTargetName = errors.New("target name cannot be empty")
	ErrEmptyActionList = errors.New("target has no valid actions")
	ErrDuplicateTarget = errors.New("duplicate target name")

	// Action-level errors: the action is dropped, the target is kept.
	ErrMalformedAction = errors.New("malformed action")
	ErrUnknownAction   = errors.New("unknown action code")
)

// ErrMarkdownRender indicates Markdown input could not be rendered.
var ErrMarkdownRender = errors.New("markdown rendering failed")
