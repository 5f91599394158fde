package selectable

// Edge identifies which end of the selection an event moves.
type Edge uint8

const (
	// EdgeStart is the leading edge of the selection in screen order.
	EdgeStart Edge = iota
	// EdgeEnd is the trailing edge of the selection in screen order.
	EdgeEnd
)

// String returns the string representation of the edge.
func (e Edge) String() string {
	if e == EdgeStart {
		return "start"
	}
	return "end"
}

// Granularity is the stepping unit for boundary-based selection updates.
type Granularity uint8

const (
	// GranularityCharacter steps by one grapheme cluster.
	GranularityCharacter Granularity = iota
	// GranularityWord steps to the next or previous word boundary.
	GranularityWord
	// GranularityLine steps to the start or end of the current visual line.
	GranularityLine
	// GranularityDocument steps to the start or end of the whole region.
	GranularityDocument
)

// String returns the string representation of the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityCharacter:
		return "character"
	case GranularityWord:
		return "word"
	case GranularityLine:
		return "line"
	case GranularityDocument:
		return "document"
	default:
		return "character"
	}
}

// LineDirection identifies the target line of a directional extension.
type LineDirection uint8

const (
	// PreviousLine extends the selection one visual line up.
	PreviousLine LineDirection = iota
	// NextLine extends the selection one visual line down.
	NextLine
)

// String returns the string representation of the direction.
func (d LineDirection) String() string {
	if d == PreviousLine {
		return "previous-line"
	}
	return "next-line"
}

// Event is a selection event delivered to a selectable unit.
// The set of events is closed; handlers switch exhaustively over the
// concrete types below.
type Event interface {
	isSelectionEvent()
}

// EdgeUpdate moves one edge of the selection to a screen position.
type EdgeUpdate struct {
	// Edge is the edge being moved.
	Edge Edge

	// Position is the target position in region coordinates.
	Position Point

	// Granularity expands the computed offset to a boundary.
	// GranularityCharacter places the edge at the nearest offset;
	// GranularityWord snaps the edge to the enclosing word boundary,
	// used while a long-press drag selects word by word.
	Granularity Granularity
}

// SelectWord selects the word at a screen position.
type SelectWord struct {
	// Position is the target position in region coordinates.
	Position Point
}

// SelectParagraph selects the entire unit containing a screen position.
type SelectParagraph struct {
	// Position is the target position in region coordinates.
	Position Point
}

// GranularExtend extends one edge of the selection by a granularity step.
type GranularExtend struct {
	// Granularity is the stepping unit.
	Granularity Granularity

	// Forward is true when extending toward the end of the content.
	Forward bool

	// IsEnd is true when the moving edge is the trailing edge.
	IsEnd bool
}

// DirectionalExtend extends one edge of the selection to an adjacent
// visual line, preserving the caret's horizontal position.
type DirectionalExtend struct {
	// Direction selects the previous or next visual line.
	Direction LineDirection

	// DX is the horizontal position to align to, in region coordinates.
	// It carries the caret's column intent across unit boundaries.
	DX float64

	// IsEnd is true when the moving edge is the trailing edge.
	IsEnd bool
}

// SelectAll selects the unit's entire content.
type SelectAll struct{}

// Clear drops the unit's selection. Clearing an already-empty unit is a
// no-op and must not be reported as a change.
type Clear struct{}

func (EdgeUpdate) isSelectionEvent()        {}
func (SelectWord) isSelectionEvent()        {}
func (SelectParagraph) isSelectionEvent()   {}
func (GranularExtend) isSelectionEvent()    {}
func (DirectionalExtend) isSelectionEvent() {}
func (SelectAll) isSelectionEvent()         {}
func (Clear) isSelectionEvent()             {}
