package main

import (
	"time"

	"github.com/dshills/textselect/selectable"
)

// clickTracker tracks click patterns for double/triple click detection.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance float64

	lastPos   selectable.Point
	lastTime  time.Time
	lastCount int
}

// newClickTracker creates a new click tracker.
func newClickTracker(maxTime time.Duration, maxDistance float64) *clickTracker {
	return &clickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// recordClick records a click and returns the click count (1, 2, or 3).
// Click count wraps back to 1 after 3.
func (t *clickTracker) recordClick(pos selectable.Point, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastCount
}

// isPartOfSequence checks if a click continues the current sequence.
func (t *clickTracker) isPartOfSequence(pos selectable.Point, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	// Manhattan distance in cells.
	dx := pos.X - t.lastPos.X
	if dx < 0 {
		dx = -dx
	}
	dy := pos.Y - t.lastPos.Y
	if dy < 0 {
		dy = -dy
	}
	return dx+dy <= t.maxDistance
}

// reset clears the click tracking state.
func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = selectable.Point{}
}
