package paragraph

import "github.com/dshills/textselect/selectable"

// Embed is a selectable unit for inline non-text content such as an
// image or a custom-drawn widget. It occupies geometric space, can be
// spanned and highlighted by a selection, and is hit-testable, but it
// contributes nothing to merged plain text.
type Embed struct {
	bounds   selectable.Rect
	selected bool
}

// savedEmbed is the Save/Restore snapshot of an Embed.
type savedEmbed struct {
	selected bool
}

// NewEmbed creates an embedded unit. The host positions it with
// SetBounds.
func NewEmbed() *Embed {
	return &Embed{}
}

// SetBounds positions the unit within the region.
func (e *Embed) SetBounds(r selectable.Rect) {
	e.bounds = r
}

// Bounds reports the unit's bounds in region coordinates.
func (e *Embed) Bounds() selectable.Rect {
	return e.bounds
}

// Selected returns true if the unit is inside the current selection.
func (e *Embed) Selected() bool {
	return e.selected
}

// relation classifies a point against the unit's bounds in screen
// order: -1 before, 0 within, +1 after.
func (e *Embed) relation(pt selectable.Point) int {
	b := e.bounds
	if pt.Y < b.Min.Y {
		return -1
	}
	if pt.Y >= b.Max.Y {
		return 1
	}
	if pt.X < b.Min.X {
		return -1
	}
	if pt.X >= b.Max.X {
		return 1
	}
	return 0
}

// Handle applies a selection event. The unit behaves as a single
// indivisible position: any event that spans it selects all of it.
func (e *Embed) Handle(ev selectable.Event) selectable.Result {
	switch event := ev.(type) {
	case selectable.EdgeUpdate:
		switch e.relation(event.Position) {
		case -1:
			// A start edge before the unit keeps it inside the span;
			// an end edge before the unit leaves it out.
			e.selected = event.Edge == selectable.EdgeStart
			return selectable.ResultPrevious
		case 1:
			e.selected = event.Edge == selectable.EdgeEnd
			return selectable.ResultNext
		default:
			e.selected = true
			return selectable.ResultEnd
		}
	case selectable.SelectWord, selectable.SelectParagraph:
		return selectable.ResultNone
	case selectable.GranularExtend:
		e.selected = true
		if event.Forward {
			return selectable.ResultNext
		}
		return selectable.ResultPrevious
	case selectable.DirectionalExtend:
		e.selected = true
		if event.Direction == selectable.NextLine {
			return selectable.ResultNext
		}
		return selectable.ResultPrevious
	case selectable.SelectAll:
		e.selected = true
		return selectable.ResultEnd
	case selectable.Clear:
		e.selected = false
		return selectable.ResultEnd
	default:
		return selectable.ResultNone
	}
}

// Geometry reports the unit's bounds as the highlight when selected.
// HasContent stays false: an embed never contributes plain text.
func (e *Embed) Geometry() selectable.Geometry {
	if !e.selected {
		return selectable.Geometry{}
	}
	return selectable.Geometry{
		Status: selectable.StatusUncollapsed,
		Start: selectable.EdgePoint{
			Position:   selectable.Pt(e.bounds.Min.X, e.bounds.Max.Y),
			LineHeight: e.bounds.Height(),
			Side:       selectable.SideLeft,
		},
		End: selectable.EdgePoint{
			Position:   e.bounds.Max,
			LineHeight: e.bounds.Height(),
			Side:       selectable.SideRight,
		},
		Rects: []selectable.Rect{e.bounds},
	}
}

// Content reports no content; embeds are transparent to aggregation.
func (e *Embed) Content() (selectable.Content, bool) {
	return selectable.Content{}, false
}

// FullySelected reports true when selected; an embed has no partial
// selection state.
func (e *Embed) FullySelected() bool {
	return e.selected
}

// Save captures the current selection state.
func (e *Embed) Save() selectable.SavedSelection {
	return savedEmbed{selected: e.selected}
}

// Restore reinstates selection state captured by Save.
func (e *Embed) Restore(state selectable.SavedSelection) {
	if saved, ok := state.(savedEmbed); ok {
		e.selected = saved.selected
	}
}
