package layout

import (
	"testing"

	"github.com/dshills/textselect/selectable"
)

func TestMonospaceSingleLine(t *testing.T) {
	m := NewMonospace("How are you?")

	if got := m.Length(); got != 12 {
		t.Errorf("Length() = %d, want 12", got)
	}
	if got := m.LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1", got)
	}
	if got := m.Direction(); got != selectable.LeftToRight {
		t.Errorf("Direction() = %v, want LeftToRight", got)
	}
}

func TestMonospaceOffsetForPoint(t *testing.T) {
	m := NewMonospace("How are you?")

	tests := []struct {
		name string
		p    selectable.Point
		want int
	}{
		{"cell start", selectable.Pt(4.2, 0.5), 4},
		{"snaps to next", selectable.Pt(4.8, 0.5), 5},
		{"left of line", selectable.Pt(-3, 0.5), 0},
		{"right of line", selectable.Pt(100, 0.5), 12},
		{"above clamps to first line", selectable.Pt(6.1, -5), 6},
		{"below clamps to last line", selectable.Pt(6.1, 99), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.OffsetForPoint(tt.p); got != tt.want {
				t.Errorf("OffsetForPoint(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestMonospaceWrapping(t *testing.T) {
	m := NewMonospace("hello world", WithColumns(5))

	if got := m.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}

	// Wrapped lines stack vertically at one cell per row.
	if got := m.LineBoundsAt(6); got.Min.Y != 1 {
		t.Errorf("LineBoundsAt(6).Min.Y = %v, want 1", got.Min.Y)
	}
	if got := m.VisualPositionFor(6); got != selectable.Pt(1, 1) {
		t.Errorf("VisualPositionFor(6) = %v, want (1, 1)", got)
	}
}

func TestMonospaceLineBreaks(t *testing.T) {
	m := NewMonospace("How are you?\nGood")

	if got := m.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	if got := m.BoundaryAt(14, selectable.GranularityLine); got != selectable.NewRange(13, 17) {
		t.Errorf("line boundary at 14 = %v, want [13,17)", got)
	}
	if got := m.BoundaryAt(5, selectable.GranularityDocument); got != selectable.NewRange(0, 17) {
		t.Errorf("document boundary = %v, want [0,17)", got)
	}
	if got := m.VisualPositionFor(13); got != selectable.Pt(0, 1) {
		t.Errorf("VisualPositionFor(13) = %v, want (0, 1)", got)
	}
}

func TestMonospaceRectsForRange(t *testing.T) {
	m := NewMonospace("abc\ndef")

	rects := m.RectsForRange(selectable.NewRange(1, 6))
	want := []selectable.Rect{
		selectable.NewRect(1, 0, 2, 1),
		selectable.NewRect(0, 1, 2, 1),
	}
	if len(rects) != len(want) {
		t.Fatalf("RectsForRange returned %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %v, want %v", i, rects[i], want[i])
		}
	}

	if got := m.RectsForRange(selectable.CollapsedRange(3)); got != nil {
		t.Errorf("collapsed range rects = %v, want nil", got)
	}
}

func TestMonospaceWideClusters(t *testing.T) {
	m := NewMonospace("日本")

	if got := m.VisualPositionFor(3); got != selectable.Pt(2, 0) {
		t.Errorf("VisualPositionFor(3) = %v, want (2, 0)", got)
	}
	// Past the midpoint of a double-width cell snaps to its end.
	if got := m.OffsetForPoint(selectable.Pt(1.2, 0.5)); got != 3 {
		t.Errorf("OffsetForPoint = %d, want 3", got)
	}
}

func TestMonospaceRightToLeft(t *testing.T) {
	m := NewMonospace("שלום")

	if got := m.Direction(); got != selectable.RightToLeft {
		t.Fatalf("Direction() = %v, want RightToLeft", got)
	}

	// The first logical cluster draws at the right edge of the line.
	if got := m.VisualPositionFor(0); got != selectable.Pt(4, 0) {
		t.Errorf("VisualPositionFor(0) = %v, want (4, 0)", got)
	}
	if got := m.VisualPositionFor(8); got != selectable.Pt(0, 0) {
		t.Errorf("VisualPositionFor(end) = %v, want (0, 0)", got)
	}

	// Clicking near the right edge resolves to the logical start.
	if got := m.OffsetForPoint(selectable.Pt(3.9, 0.5)); got != 0 {
		t.Errorf("OffsetForPoint near right edge = %d, want 0", got)
	}
	if got := m.OffsetForPoint(selectable.Pt(0.1, 0.5)); got != 8 {
		t.Errorf("OffsetForPoint near left edge = %d, want 8", got)
	}
}

func TestMonospaceCellSize(t *testing.T) {
	m := NewMonospace("abc", WithCellSize(8, 16))

	if got := m.VisualPositionFor(2); got != selectable.Pt(16, 0) {
		t.Errorf("VisualPositionFor(2) = %v, want (16, 0)", got)
	}
	if got := m.OffsetForPoint(selectable.Pt(17, 8)); got != 2 {
		t.Errorf("OffsetForPoint = %d, want 2", got)
	}
	if got := m.LineBoundsAt(0); got != selectable.NewRect(0, 0, 24, 16) {
		t.Errorf("LineBoundsAt(0) = %v, want 24x16 at origin", got)
	}
}

func TestDeferredLayout(t *testing.T) {
	d := NewDeferred(NewMonospace("abc"))

	if d.Ready() {
		t.Error("Ready() = true before MarkReady")
	}
	d.MarkReady(true)
	if !d.Ready() {
		t.Error("Ready() = false after MarkReady")
	}
	if got := d.Length(); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
	if got := d.OffsetForPoint(selectable.Pt(1.1, 0.5)); got != 1 {
		t.Errorf("OffsetForPoint = %d, want 1", got)
	}
}
