package selectable

// TextDirection is the base writing direction of a unit's text.
type TextDirection uint8

const (
	// LeftToRight is the direction of Latin-script text.
	LeftToRight TextDirection = iota
	// RightToLeft is the direction of Arabic- and Hebrew-script text.
	RightToLeft
)

// String returns the string representation of the direction.
func (d TextDirection) String() string {
	if d == LeftToRight {
		return "ltr"
	}
	return "rtl"
}

// LeadingSide returns the handle side of the leading selection edge for
// text written in this direction.
func (d TextDirection) LeadingSide() HandleSide {
	if d == LeftToRight {
		return SideLeft
	}
	return SideRight
}

// TrailingSide returns the handle side of the trailing selection edge
// for text written in this direction.
func (d TextDirection) TrailingSide() HandleSide {
	if d == LeftToRight {
		return SideRight
	}
	return SideLeft
}
