// Package pipeline implements the copy-time rewrite actions and the stages
// that feed them.
//
// This package holds:
//   - The action library: document wrapping, background/margin/padding and
//     configured style stripping, full style removal, color translation,
//     <img src> fixing, <mark> to <span> conversion, <pre> background fixing
//   - Markdown rendering via Goldmark with inline-styled syntax highlighting
//   - Optional HTML sanitization via bluemonday
//
// Actions work on the HTML text directly through internal/htmlscan and
// internal/cssdecl. Target resolution and action ordering live in the root
// htmlcopy package.
package pipeline
