// Package layout defines the text layout capability consumed by
// selectable text units, and provides a monospace reference
// implementation.
//
// The selection core never shapes or measures text itself. Every mapping
// between a text offset and a screen position goes through the Layout
// interface, supplied by the host's text stack. The Monospace type
// implements the interface for fixed-cell text (terminal grids, tests),
// wrapping by grapheme cluster and honoring right-to-left paragraphs.
//
// A Layout may momentarily have no answers, typically between a content
// change and the next layout pass. Ready reports that state; callers
// defer their computation instead of consuming stale geometry. The
// Deferred wrapper gives hosts an explicit switch for it.
package layout
