// Package preview tracks the rendered previews (images, code blocks, math
// blocks) attached to one block of source text.
//
// Each preview covers a half-open [Start, End) span of the block's text.
// A Block keeps its previews ordered by Start with no two spans overlapping:
// inserting a preview replaces every entry it intersects, and re-inserting an
// identical span only refreshes its timestamp.
package preview

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidRegion indicates a region whose span is negative or inverted.
var ErrInvalidRegion = errors.New("invalid preview region")

// Source identifies what produced a preview.
type Source int

// Preview sources.
const (
	SourceImageLink Source = iota
	SourceCodeBlock
	SourceMathBlock
)

// String returns the name of the source.
func (s Source) String() string {
	switch s {
	case SourceImageLink:
		return "image-link"
	case SourceCodeBlock:
		return "code-block"
	case SourceMathBlock:
		return "math-block"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Size is the cached pixel size of a rendered image.
type Size struct {
	Width  int
	Height int
}

// Region describes the text span a preview image stands for and how the
// image is drawn.
type Region struct {
	// Start and End delimit the span within the block, End excluded.
	Start int
	End   int

	// Padding applies to block images only.
	Padding int

	// Inline is true for images drawn inside the line.
	Inline bool

	// ImageName is the image's key in the resource manager.
	ImageName string

	ImageSize Size

	// Background is forced before the image is drawn.
	Background string
}

// Valid reports whether the span is non-negative and not inverted.
func (r Region) Valid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

// Before reports whether r ends at or before o starts.
func (r Region) Before(o Region) bool {
	return r.End <= o.Start
}

// Intersects reports whether the spans of r and o overlap.
func (r Region) Intersects(o Region) bool {
	return !(r.End <= o.Start || r.Start >= o.End)
}

// String returns a description for debugging.
func (r Region) String() string {
	return fmt.Sprintf("previewed image (%s): [%d, %d) padding %d inline %t (%d,%d) bg(%s)",
		r.ImageName, r.Start, r.End, r.Padding, r.Inline,
		r.ImageSize.Width, r.ImageSize.Height, r.Background)
}

// Preview is one rendered preview of a block.
type Preview struct {
	Source    Source
	Timestamp int64
	Region    Region
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (p Preview) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("source", p.Source).
		Int64("timestamp", p.Timestamp).
		Int("start", p.Region.Start).
		Int("end", p.Region.End).
		Str("image", p.Region.ImageName)
}

// Block holds the ordered, non-overlapping previews of one text block.
// A Block is not safe for concurrent use.
type Block struct {
	previews        []Preview
	codeBlockIndent int
}

// NewBlock returns an empty Block with no code block indentation set.
func NewBlock() *Block {
	return &Block{codeBlockIndent: -1}
}

// Insert adds p, keeping previews ordered by Start.
// An entry with an identical region is replaced and true is returned, since
// only its timestamp changed. Entries whose span intersects p otherwise are
// removed.
func (b *Block) Insert(p Preview) (bool, error) {
	if !p.Region.Valid() {
		return false, fmt.Errorf("%w: [%d, %d)", ErrInvalidRegion, p.Region.Start, p.Region.End)
	}

	for i := 0; i < len(b.previews); {
		cur := b.previews[i].Region
		switch {
		case p.Region.Before(cur) && p.Region != cur:
			b.previews = slices.Insert(b.previews, i, p)
			return false, nil
		case p.Region == cur:
			b.previews[i] = p
			return true, nil
		case p.Region.Intersects(cur):
			b.previews = slices.Delete(b.previews, i, i+1)
		default:
			i++
		}
	}

	b.previews = append(b.previews, p)
	return false, nil
}

// ClearObsolete removes the previews of source not refreshed at timestamp.
// It reports whether anything was removed.
func (b *Block) ClearObsolete(timestamp int64, source Source) bool {
	n := len(b.previews)
	b.previews = slices.DeleteFunc(b.previews, func(p Preview) bool {
		return p.Source == source && p.Timestamp != timestamp
	})
	return len(b.previews) != n
}

// Previews returns a copy of the previews in order.
func (b *Block) Previews() []Preview {
	return append([]Preview(nil), b.previews...)
}

// Len returns the number of previews.
func (b *Block) Len() int {
	return len(b.previews)
}

// CodeBlockIndent returns the indentation of the fenced code block this
// block belongs to, or -1 when unset.
func (b *Block) CodeBlockIndent() int {
	return b.codeBlockIndent
}

// SetCodeBlockIndent sets the code block indentation.
func (b *Block) SetCodeBlockIndent(indent int) {
	b.codeBlockIndent = indent
}

// String returns a description of the previews for debugging.
func (b *Block) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "block data %d previews\n", len(b.previews))
	for i, p := range b.previews {
		fmt.Fprintf(&sb, "%d: source %s ts %d %s\n", i, p.Source, p.Timestamp, p.Region)
	}
	return sb.String()
}

// inOrder reports whether each preview ends at or before the next starts.
func (b *Block) inOrder() bool {
	for i := 1; i < len(b.previews); i++ {
		if !b.previews[i-1].Region.Before(b.previews[i].Region) {
			return false
		}
	}
	return true
}
