// Package paragraph provides the text leaf unit of a selection region.
//
// A Paragraph owns a reference to externally laid-out text and realizes
// the selectable contract over it: it answers edge updates, boundary
// selects, and granular or directional extensions, and reports selected
// geometry and plain text. It holds no text storage of its own beyond
// the string it was given; selection state is a pair of byte offsets.
//
// The package also provides Embed, a non-text unit for inline widgets:
// it occupies geometric space and can be spanned by a selection, but
// contributes nothing to merged content.
package paragraph

import (
	"fmt"

	"github.com/dshills/textselect/boundary"
	"github.com/dshills/textselect/layout"
	"github.com/dshills/textselect/selectable"
)

// noEdge marks an unset selection edge.
const noEdge = -1

// Paragraph is a selectable text unit backed by a Layout.
type Paragraph struct {
	text   string
	lay    layout.Layout
	bounds selectable.Rect

	// Selection edges as byte offsets; noEdge when unset.
	// startEdge is the leading edge in screen order, endEdge the
	// trailing edge.
	startEdge int
	endEdge   int

	// extentIsStart records which edge moved last. The moving edge is
	// the selection's head, the other its anchor.
	extentIsStart bool

	// geometry cache, recomputed lazily after mutations.
	geom      selectable.Geometry
	geomDirty bool
}

// savedParagraph is the Save/Restore snapshot of a Paragraph.
type savedParagraph struct {
	startEdge     int
	endEdge       int
	extentIsStart bool
}

// New creates a paragraph over the given text and layout. Bounds start
// empty; the host positions the unit with SetBounds.
func New(text string, lay layout.Layout) *Paragraph {
	return &Paragraph{
		text:      text,
		lay:       lay,
		startEdge: noEdge,
		endEdge:   noEdge,
	}
}

// SetBounds positions the unit within the region.
func (p *Paragraph) SetBounds(r selectable.Rect) {
	p.bounds = r
	p.geomDirty = true
}

// Bounds reports the unit's bounds in region coordinates.
func (p *Paragraph) Bounds() selectable.Rect {
	return p.bounds
}

// Text returns the unit's full text.
func (p *Paragraph) Text() string {
	return p.text
}

// Selection returns the unit's current range. The second return is
// false when the unit holds no selection.
func (p *Paragraph) Selection() (selectable.Range, bool) {
	if p.startEdge == noEdge || p.endEdge == noEdge {
		return selectable.Range{}, false
	}
	if p.extentIsStart {
		return selectable.NewRange(p.endEdge, p.startEdge), true
	}
	return selectable.NewRange(p.startEdge, p.endEdge), true
}

// SetSelection programmatically sets the unit's range. Offsets outside
// [0, len(text)] are a contract violation and panic before any state
// changes.
func (p *Paragraph) SetSelection(r selectable.Range) {
	p.validateOffset(r.Anchor)
	p.validateOffset(r.Head)
	if r.IsBackward() {
		p.startEdge, p.endEdge = r.Head, r.Anchor
		p.extentIsStart = true
	} else {
		p.startEdge, p.endEdge = r.Anchor, r.Head
		p.extentIsStart = false
	}
	p.geomDirty = true
}

// validateOffset panics if offset is outside the unit's text.
func (p *Paragraph) validateOffset(offset int) {
	if offset < 0 || offset > len(p.text) {
		panic(fmt.Sprintf("paragraph: offset %d out of range [0,%d]", offset, len(p.text)))
	}
}

// FullySelected returns true if the entire text is selected.
func (p *Paragraph) FullySelected() bool {
	if p.startEdge == noEdge || p.endEdge == noEdge {
		return len(p.text) == 0
	}
	lo, hi := p.span()
	return lo == 0 && hi == len(p.text)
}

// Save captures the current selection state.
func (p *Paragraph) Save() selectable.SavedSelection {
	return savedParagraph{
		startEdge:     p.startEdge,
		endEdge:       p.endEdge,
		extentIsStart: p.extentIsStart,
	}
}

// Restore reinstates selection state captured by Save.
func (p *Paragraph) Restore(state selectable.SavedSelection) {
	saved, ok := state.(savedParagraph)
	if !ok {
		return
	}
	p.startEdge = saved.startEdge
	p.endEdge = saved.endEdge
	p.extentIsStart = saved.extentIsStart
	p.geomDirty = true
}

// Handle applies a selection event.
func (p *Paragraph) Handle(ev selectable.Event) selectable.Result {
	switch e := ev.(type) {
	case selectable.EdgeUpdate:
		return p.handleEdgeUpdate(e)
	case selectable.SelectWord:
		return p.handleSelectWord(e)
	case selectable.SelectParagraph:
		return p.handleSelectParagraph(e)
	case selectable.GranularExtend:
		return p.handleGranularExtend(e)
	case selectable.DirectionalExtend:
		return p.handleDirectionalExtend(e)
	case selectable.SelectAll:
		p.setSpan(0, len(p.text), false)
		return selectable.ResultEnd
	case selectable.Clear:
		p.clear()
		return selectable.ResultEnd
	default:
		return selectable.ResultNone
	}
}

// relation classifies a point against the unit's bounds in screen
// order: -1 before, 0 within, +1 after. Vertical position dominates;
// within the unit's vertical band, global left-to-right order applies.
func (p *Paragraph) relation(pt selectable.Point) int {
	b := p.bounds
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

// leadingExtremity is the offset at the unit's screen-order start.
func (p *Paragraph) leadingExtremity() int {
	if p.lay.Direction() == selectable.RightToLeft {
		return len(p.text)
	}
	return 0
}

// trailingExtremity is the offset at the unit's screen-order end.
func (p *Paragraph) trailingExtremity() int {
	if p.lay.Direction() == selectable.RightToLeft {
		return 0
	}
	return len(p.text)
}

// handleEdgeUpdate moves one selection edge toward a screen position.
// A point outside the unit clamps the edge to the extremity on that
// side, which is what makes a drag select through intervening units.
func (p *Paragraph) handleEdgeUpdate(e selectable.EdgeUpdate) selectable.Result {
	if !p.lay.Ready() {
		return selectable.ResultPending
	}
	var offset int
	var res selectable.Result
	switch p.relation(e.Position) {
	case -1:
		offset = p.leadingExtremity()
		res = selectable.ResultPrevious
	case 1:
		offset = p.trailingExtremity()
		res = selectable.ResultNext
	default:
		local := e.Position.Sub(p.bounds.Min)
		offset = p.lay.OffsetForPoint(local)
		res = selectable.ResultEnd
	}
	if e.Granularity == selectable.GranularityWord && res == selectable.ResultEnd {
		word := p.lay.BoundaryAt(offset, selectable.GranularityWord)
		if e.Edge == selectable.EdgeStart {
			offset = word.Start()
		} else {
			offset = word.End()
		}
	}
	p.setEdge(e.Edge, offset)
	return res
}

// handleSelectWord selects the word token at a screen position.
func (p *Paragraph) handleSelectWord(e selectable.SelectWord) selectable.Result {
	if !p.lay.Ready() {
		return selectable.ResultPending
	}
	if p.relation(e.Position) != 0 {
		return selectable.ResultNone
	}
	local := e.Position.Sub(p.bounds.Min)
	word := p.lay.BoundaryAt(p.lay.OffsetForPoint(local), selectable.GranularityWord)
	p.setSpan(word.Start(), word.End(), false)
	return selectable.ResultEnd
}

// handleSelectParagraph selects the whole unit at a screen position.
func (p *Paragraph) handleSelectParagraph(e selectable.SelectParagraph) selectable.Result {
	if p.relation(e.Position) != 0 {
		return selectable.ResultNone
	}
	p.setSpan(0, len(p.text), false)
	return selectable.ResultEnd
}

// handleGranularExtend extends the moving edge by one boundary step.
// Stepping off either end of the text clamps the edge to the extremity
// and reports the overflow so the registrar continues with a neighbor.
func (p *Paragraph) handleGranularExtend(e selectable.GranularExtend) selectable.Result {
	if e.Granularity == selectable.GranularityLine && !p.lay.Ready() {
		return selectable.ResultPending
	}

	cur, ok := p.movingEdge(e.IsEnd)
	if !ok {
		// Entering from a neighbor: the extension starts at the
		// extremity the walk came from.
		if e.Forward {
			cur = 0
		} else {
			cur = len(p.text)
		}
		p.setSpan(cur, cur, !e.IsEnd)
	}

	target := cur
	switch e.Granularity {
	case selectable.GranularityCharacter:
		if e.Forward {
			target = boundary.NextGrapheme(p.text, cur)
		} else {
			target = boundary.PrevGrapheme(p.text, cur)
		}
	case selectable.GranularityWord:
		if e.Forward {
			target = boundary.NextWordEnd(p.text, cur)
		} else {
			target = boundary.PrevWordStart(p.text, cur)
		}
	case selectable.GranularityLine:
		target = p.lineStep(cur, e.Forward)
	case selectable.GranularityDocument:
		// Document extension always runs through to the region's edge;
		// every unit on the way selects to its own extremity.
		if e.Forward {
			p.setMovingEdge(e.IsEnd, len(p.text))
			return selectable.ResultNext
		}
		p.setMovingEdge(e.IsEnd, 0)
		return selectable.ResultPrevious
	}

	if target == cur {
		// No progress: the edge is at the unit's extremity and the next
		// boundary lies in a neighboring unit.
		if e.Forward {
			p.setMovingEdge(e.IsEnd, len(p.text))
			return selectable.ResultNext
		}
		p.setMovingEdge(e.IsEnd, 0)
		return selectable.ResultPrevious
	}
	p.setMovingEdge(e.IsEnd, target)
	return selectable.ResultEnd
}

// lineStep returns the line-granularity target for cur: the edge of the
// current visual line, or of the adjacent line when already at an edge.
func (p *Paragraph) lineStep(cur int, forward bool) int {
	line := p.lay.BoundaryAt(cur, selectable.GranularityLine)
	if forward {
		if cur < line.End() {
			return line.End()
		}
		next := boundary.NextGrapheme(p.text, cur)
		if next == cur {
			return cur
		}
		return p.lay.BoundaryAt(next, selectable.GranularityLine).End()
	}
	if cur > line.Start() {
		return line.Start()
	}
	if cur == 0 {
		return 0
	}
	prev := boundary.PrevGrapheme(p.text, cur)
	return p.lay.BoundaryAt(prev, selectable.GranularityLine).Start()
}

// handleDirectionalExtend moves the extension edge one visual line up
// or down, aligning to the horizontal position carried by the event.
func (p *Paragraph) handleDirectionalExtend(e selectable.DirectionalExtend) selectable.Result {
	if !p.lay.Ready() {
		return selectable.ResultPending
	}
	localX := e.DX - p.bounds.Min.X

	cur, ok := p.movingEdge(e.IsEnd)
	if !ok {
		// Entering from a neighbor: land on the first line when moving
		// down, the last line when moving up, aligned to DX.
		var y float64
		var fill int
		if e.Direction == selectable.NextLine {
			y = p.lay.LineBoundsAt(0).Height() / 2
			fill = 0
		} else {
			last := p.lay.LineBoundsAt(p.lay.Length())
			y = last.Min.Y + last.Height()/2
			fill = p.lay.Length()
		}
		offset := p.lay.OffsetForPoint(selectable.Pt(localX, y))
		p.setSpan(fill, fill, false)
		p.setMovingEdge(e.IsEnd, offset)
		return selectable.ResultEnd
	}

	pos := p.lay.VisualPositionFor(cur)
	lineH := p.lay.LineBoundsAt(cur).Height()
	var targetY float64
	if e.Direction == selectable.NextLine {
		targetY = pos.Y + lineH*1.5
	} else {
		targetY = pos.Y - lineH/2
	}

	bottom := p.lay.LineBoundsAt(p.lay.Length()).Max.Y
	if targetY < 0 {
		p.setMovingEdge(e.IsEnd, 0)
		return selectable.ResultPrevious
	}
	if targetY >= bottom {
		p.setMovingEdge(e.IsEnd, p.lay.Length())
		return selectable.ResultNext
	}
	offset := p.lay.OffsetForPoint(selectable.Pt(localX, targetY))
	p.setMovingEdge(e.IsEnd, offset)
	return selectable.ResultEnd
}

// movingEdge returns the offset of the edge a keyboard extension moves.
func (p *Paragraph) movingEdge(isEnd bool) (int, bool) {
	if p.startEdge == noEdge || p.endEdge == noEdge {
		return 0, false
	}
	if isEnd {
		return p.endEdge, true
	}
	return p.startEdge, true
}

// setMovingEdge moves one edge and records it as the extent.
func (p *Paragraph) setMovingEdge(isEnd bool, offset int) {
	if isEnd {
		p.setEdge(selectable.EdgeEnd, offset)
	} else {
		p.setEdge(selectable.EdgeStart, offset)
	}
}

// setEdge sets one edge, filling a missing opposite edge with the
// extremity so a pass-through unit covers itself entirely.
func (p *Paragraph) setEdge(edge selectable.Edge, offset int) {
	p.validateOffset(offset)
	if edge == selectable.EdgeStart {
		p.startEdge = offset
		if p.endEdge == noEdge {
			p.endEdge = p.trailingExtremity()
		}
		p.extentIsStart = true
	} else {
		p.endEdge = offset
		if p.startEdge == noEdge {
			p.startEdge = p.leadingExtremity()
		}
		p.extentIsStart = false
	}
	p.geomDirty = true
}

// setSpan sets both edges at once.
func (p *Paragraph) setSpan(start, end int, extentIsStart bool) {
	p.validateOffset(start)
	p.validateOffset(end)
	p.startEdge = start
	p.endEdge = end
	p.extentIsStart = extentIsStart
	p.geomDirty = true
}

// clear drops the selection. Clearing an empty unit changes nothing.
func (p *Paragraph) clear() {
	if p.startEdge == noEdge && p.endEdge == noEdge {
		return
	}
	p.startEdge = noEdge
	p.endEdge = noEdge
	p.extentIsStart = false
	p.geomDirty = true
}

// span returns the normalized selected byte range.
func (p *Paragraph) span() (lo, hi int) {
	lo, hi = p.startEdge, p.endEdge
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Geometry reports the current selection shape in region coordinates.
// While the layout is not ready the last computed geometry stands;
// events that would change it are deferred rather than applied.
func (p *Paragraph) Geometry() selectable.Geometry {
	if p.startEdge == noEdge || p.endEdge == noEdge {
		return selectable.Geometry{}
	}
	if !p.geomDirty || !p.lay.Ready() {
		return p.geom
	}
	p.geom = p.computeGeometry()
	p.geomDirty = false
	return p.geom
}

// computeGeometry derives the geometry from the current edges.
func (p *Paragraph) computeGeometry() selectable.Geometry {
	lo, hi := p.span()
	dir := p.lay.Direction()

	edgePoint := func(offset int, side selectable.HandleSide) selectable.EdgePoint {
		top := p.lay.VisualPositionFor(offset)
		lineH := p.lay.LineBoundsAt(offset).Height()
		return selectable.EdgePoint{
			Position:   selectable.Pt(top.X, top.Y+lineH).Add(p.bounds.Min),
			LineHeight: lineH,
			Side:       side,
		}
	}

	g := selectable.Geometry{
		Start:      edgePoint(lo, dir.LeadingSide()),
		End:        edgePoint(hi, dir.TrailingSide()),
		HasContent: lo < hi,
	}
	if lo == hi {
		g.Status = selectable.StatusCollapsed
	} else {
		g.Status = selectable.StatusUncollapsed
	}
	for _, r := range p.lay.RectsForRange(selectable.NewRange(lo, hi)) {
		g.Rects = append(g.Rects, r.Translate(p.bounds.Min))
	}
	return g
}

// Content returns the selected plain text. A collapsed or absent
// selection contributes nothing. Content never mutates state.
func (p *Paragraph) Content() (selectable.Content, bool) {
	if p.startEdge == noEdge || p.endEdge == noEdge {
		return selectable.Content{}, false
	}
	lo, hi := p.span()
	if lo == hi {
		return selectable.Content{}, false
	}
	return selectable.Content{Text: p.text[lo:hi]}, true
}
