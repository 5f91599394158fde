package registrar

import (
	"sort"

	"github.com/dshills/textselect/selectable"
)

// CompareScreenOrder orders two unit bounds in screen order: disjoint
// vertical bands order top-to-bottom; units sharing a visual row order
// left-to-right by global position regardless of their text direction.
// Returns -1, 0, or +1.
func CompareScreenOrder(a, b selectable.Rect) int {
	if a.Max.Y <= b.Min.Y {
		return -1
	}
	if b.Max.Y <= a.Min.Y {
		return 1
	}
	switch {
	case a.Min.X < b.Min.X:
		return -1
	case a.Min.X > b.Min.X:
		return 1
	}
	switch {
	case a.Min.Y < b.Min.Y:
		return -1
	case a.Min.Y > b.Min.Y:
		return 1
	}
	return 0
}

// sameRow returns true if two bounds overlap vertically, i.e. sit on
// the same visual row.
func sameRow(a, b selectable.Rect) bool {
	return a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// pointRelation classifies a point against bounds in screen order:
// -1 before, 0 within, +1 after.
func pointRelation(b selectable.Rect, p selectable.Point) int {
	if p.Y < b.Min.Y {
		return -1
	}
	if p.Y >= b.Max.Y {
		return 1
	}
	if p.X < b.Min.X {
		return -1
	}
	if p.X >= b.Max.X {
		return 1
	}
	return 0
}

// screenSort sorts entries into screen order. Ties fall back to
// registration order, so overlapping units keep paint order. The sort
// is stable and the input slice is sorted in place.
func screenSort(entries []*entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		c := CompareScreenOrder(entries[i].unit.Bounds(), entries[j].unit.Bounds())
		if c != 0 {
			return c < 0
		}
		return entries[i].order < entries[j].order
	})
}
