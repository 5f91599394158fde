package layout

import "github.com/dshills/textselect/selectable"

// Layout maps between text offsets and positions in a unit's local
// coordinate space. Offsets are byte offsets into the unit's text.
//
// All query methods require Ready to be true; querying an unready layout
// is a contract violation and implementations are free to panic. Callers
// inside the selection core check Ready first and defer the event
// instead (see selectable.ResultPending).
type Layout interface {
	// Ready reports whether the layout reflects the current text.
	Ready() bool

	// Length returns the text length in bytes.
	Length() int

	// OffsetForPoint returns the valid text offset nearest to a point in
	// local coordinates. Points outside the laid-out text clamp to the
	// nearest line start or end.
	OffsetForPoint(p selectable.Point) int

	// BoundaryAt returns the boundary of the given granularity enclosing
	// offset: the grapheme cluster, word token, visual line, or the
	// whole document. The returned range is forward (Anchor <= Head).
	BoundaryAt(offset int, g selectable.Granularity) selectable.Range

	// LineBoundsAt returns the bounds of the visual line containing
	// offset, in local coordinates.
	LineBoundsAt(offset int) selectable.Rect

	// VisualPositionFor returns the top of the caret at offset, in local
	// coordinates.
	VisualPositionFor(offset int) selectable.Point

	// RectsForRange returns the highlight boxes covering a text range,
	// one per visual line touched, in local coordinates. The range is
	// normalized first; a collapsed range yields no boxes.
	RectsForRange(r selectable.Range) []selectable.Rect

	// Direction returns the base writing direction of the text.
	Direction() selectable.TextDirection
}

// Deferred wraps a Layout behind an explicit readiness switch. Hosts
// flip it off when content or constraints change and back on from their
// post-layout callback.
type Deferred struct {
	inner Layout
	ready bool
}

// NewDeferred wraps a layout, initially not ready.
func NewDeferred(inner Layout) *Deferred {
	return &Deferred{inner: inner}
}

// MarkReady sets the readiness state.
func (d *Deferred) MarkReady(ready bool) {
	d.ready = ready
}

// Ready reports whether the wrapper has been marked ready and the
// underlying layout is ready.
func (d *Deferred) Ready() bool {
	return d.ready && d.inner.Ready()
}

// Length returns the text length in bytes.
func (d *Deferred) Length() int { return d.inner.Length() }

// OffsetForPoint delegates to the wrapped layout.
func (d *Deferred) OffsetForPoint(p selectable.Point) int { return d.inner.OffsetForPoint(p) }

// BoundaryAt delegates to the wrapped layout.
func (d *Deferred) BoundaryAt(offset int, g selectable.Granularity) selectable.Range {
	return d.inner.BoundaryAt(offset, g)
}

// LineBoundsAt delegates to the wrapped layout.
func (d *Deferred) LineBoundsAt(offset int) selectable.Rect { return d.inner.LineBoundsAt(offset) }

// VisualPositionFor delegates to the wrapped layout.
func (d *Deferred) VisualPositionFor(offset int) selectable.Point {
	return d.inner.VisualPositionFor(offset)
}

// RectsForRange delegates to the wrapped layout.
func (d *Deferred) RectsForRange(r selectable.Range) []selectable.Rect {
	return d.inner.RectsForRange(r)
}

// Direction delegates to the wrapped layout.
func (d *Deferred) Direction() selectable.TextDirection { return d.inner.Direction() }
