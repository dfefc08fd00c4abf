// Package htmlscan locates HTML start tags and their style attributes by
// pattern matching, without building a document tree.
//
// The scanner understands just enough markup to rewrite style attributes in
// place:
//   - FindTag and FindStyledTag return the leftmost start tag at or after an offset
//   - SkipToTagEnd jumps over a tag's subtree, tracking same-named nesting
//   - Walk yields start tags lazily, skipping the subtrees of listed tags
//   - Editor collects replacements in source coordinates and flattens once
package htmlscan
