package selectable

import "fmt"

// Range represents a selection within a unit's local text.
// Anchor is where the selection started; Head is the moving end.
// Anchor > Head encodes a backward (reversed) selection.
// When Anchor == Head the range is collapsed to a caret.
// Range is an immutable value type.
type Range struct {
	Anchor int // Fixed end of the selection (the interaction's base)
	Head   int // Moving end of the selection (the extent)
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head int) Range {
	return Range{Anchor: anchor, Head: head}
}

// CollapsedRange creates a range representing a caret at offset.
func CollapsedRange(offset int) Range {
	return Range{Anchor: offset, Head: offset}
}

// IsCollapsed returns true if the range has no extent.
func (r Range) IsCollapsed() bool {
	return r.Anchor == r.Head
}

// Len returns the length of the range in offsets.
func (r Range) Len() int {
	if r.Anchor <= r.Head {
		return r.Head - r.Anchor
	}
	return r.Anchor - r.Head
}

// Start returns the lower bound of the range.
func (r Range) Start() int {
	if r.Anchor <= r.Head {
		return r.Anchor
	}
	return r.Head
}

// End returns the upper bound of the range.
func (r Range) End() int {
	if r.Anchor >= r.Head {
		return r.Anchor
	}
	return r.Head
}

// IsBackward returns true if the range extends backward (head before anchor).
func (r Range) IsBackward() bool {
	return r.Head < r.Anchor
}

// Extend returns a new range with the head moved to offset.
// The anchor remains fixed.
func (r Range) Extend(offset int) Range {
	return Range{Anchor: r.Anchor, Head: offset}
}

// Normalize returns a forward range covering the same offsets.
func (r Range) Normalize() Range {
	if r.Anchor <= r.Head {
		return r
	}
	return Range{Anchor: r.Head, Head: r.Anchor}
}

// Flip returns a range with anchor and head swapped.
func (r Range) Flip() Range {
	return Range{Anchor: r.Head, Head: r.Anchor}
}

// Contains returns true if offset lies within [Start, End).
// A collapsed range contains nothing.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start() && offset < r.End()
}

// Clamp returns the range restricted to [0, maxOffset].
func (r Range) Clamp(maxOffset int) Range {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > maxOffset {
			return maxOffset
		}
		return v
	}
	return Range{Anchor: clamp(r.Anchor), Head: clamp(r.Head)}
}

// SameSpan returns true if both ranges cover the same offsets,
// regardless of direction.
func (r Range) SameSpan(other Range) bool {
	return r.Start() == other.Start() && r.End() == other.End()
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	if r.IsCollapsed() {
		return fmt.Sprintf("Caret(%d)", r.Head)
	}
	dir := "→"
	if r.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Range(%d%s%d)", r.Anchor, dir, r.Head)
}
