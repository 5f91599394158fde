package selectable

// Status describes the shape of a selection.
type Status uint8

const (
	// StatusNone means no selection exists.
	StatusNone Status = iota
	// StatusCollapsed means the selection is a caret with no extent.
	StatusCollapsed
	// StatusUncollapsed means the selection covers a non-empty span.
	StatusUncollapsed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusCollapsed:
		return "collapsed"
	case StatusUncollapsed:
		return "uncollapsed"
	default:
		return "none"
	}
}

// HandleSide is the logical side a drag handle attaches to. It follows
// the text direction of the unit owning the edge: the leading edge of
// left-to-right text carries a left handle, of right-to-left text a
// right handle.
type HandleSide uint8

const (
	// SideLeft places the handle on the left of the edge.
	SideLeft HandleSide = iota
	// SideRight places the handle on the right of the edge.
	SideRight
)

// String returns the string representation of the side.
func (s HandleSide) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// EdgePoint describes one edge of a selection for handle placement.
// Consumers can position a drag handle from it without knowing anything
// about the unit's internal layout.
type EdgePoint struct {
	// Position is the bottom of the edge caret in region coordinates.
	Position Point

	// LineHeight is the height of the line the edge sits on, used to
	// size the handle.
	LineHeight float64

	// Side is the logical side the handle attaches to.
	Side HandleSide
}

// Geometry is the visual shape of a selection, either of one unit or of
// a whole region after merging. All coordinates are region coordinates.
type Geometry struct {
	// Status describes the selection shape.
	Status Status

	// Start is the leading selection edge in screen order.
	// Only meaningful when Status is not StatusNone.
	Start EdgePoint

	// End is the trailing selection edge in screen order.
	// Only meaningful when Status is not StatusNone.
	End EdgePoint

	// Rects are the highlight boxes covering the selected content.
	Rects []Rect

	// HasContent is true when the selection covers content that would
	// contribute to the merged plain text.
	HasContent bool
}

// HasSelection returns true if any selection exists, collapsed or not.
func (g Geometry) HasSelection() bool {
	return g.Status != StatusNone
}

// Equal reports whether two geometries describe the same shape.
func (g Geometry) Equal(other Geometry) bool {
	if g.Status != other.Status ||
		g.Start != other.Start ||
		g.End != other.End ||
		g.HasContent != other.HasContent ||
		len(g.Rects) != len(other.Rects) {
		return false
	}
	for i := range g.Rects {
		if g.Rects[i] != other.Rects[i] {
			return false
		}
	}
	return true
}
