package region

import (
	"github.com/dshills/textselect/boundary"
	"github.com/dshills/textselect/notify"
	"github.com/dshills/textselect/registrar"
	"github.com/dshills/textselect/selectable"
)

// InteractionKind identifies the active interaction of a session.
type InteractionKind uint8

const (
	// InteractionNone means no interaction is in flight.
	InteractionNone InteractionKind = iota
	// InteractionPointer is a pointer drag establishing a selection.
	InteractionPointer
	// InteractionStartHandle is a drag of the start handle.
	InteractionStartHandle
	// InteractionEndHandle is a drag of the end handle.
	InteractionEndHandle
	// InteractionKeyboard is a run of keyboard extensions.
	InteractionKeyboard
)

// Region coordinates selection across one selectable area. It is not
// safe for concurrent use; all commands run synchronously on the
// caller's goroutine.
type Region struct {
	root      *registrar.Registrar
	pub       *notify.Publisher
	clipboard Clipboard
	hooks     Hooks

	// Session state for the interaction in flight.
	kind       InteractionKind
	anchor     selectable.Point
	movingEdge selectable.Edge
	saved      selectable.SavedSelection

	// Horizontal caret intent for vertical extension runs.
	dx      float64
	dxValid bool

	// Word count of the last published content, for drag feedback.
	lastWordCount int

	// Events deferred until the next layout pass.
	pending []selectable.Event
}

// New creates an empty region.
func New(opts ...Option) *Region {
	r := &Region{
		root:       registrar.New(),
		pub:        notify.NewPublisher(),
		movingEdge: selectable.EdgeEnd,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a unit to the region's root registrar.
func (r *Region) Register(unit selectable.Selectable) registrar.Handle {
	return r.root.Register(unit)
}

// Unregister removes a unit. A unit holding part of the selection is
// excluded cleanly from the next merge.
func (r *Region) Unregister(h registrar.Handle) {
	r.root.Unregister(h)
}

// Root exposes the root registrar, for nesting regions inside larger
// trees or building subtrees.
func (r *Region) Root() *registrar.Registrar {
	return r.root
}

// OnSelectionChanged registers a listener for merged content changes.
// A listener fires at most once per dispatched command.
func (r *Region) OnSelectionChanged(fn func(selectable.Content)) notify.Subscription {
	return r.pub.OnContent(func(c selectable.Content) { fn(c) })
}

// OnGeometryChanged registers a listener for merged geometry changes,
// used by handle and highlight overlays.
func (r *Region) OnGeometryChanged(fn func(selectable.Geometry)) notify.Subscription {
	return r.pub.OnGeometry(func(g selectable.Geometry) { fn(g) })
}

// Geometry returns the current merged geometry. The second return is
// false while a deferred event awaits the next layout pass; callers
// must not confuse that with an empty selection.
func (r *Region) Geometry() (selectable.Geometry, bool) {
	if len(r.pending) > 0 {
		return selectable.Geometry{}, false
	}
	return r.root.Geometry(), true
}

// Content returns the merged plain text of the current selection.
func (r *Region) Content() (selectable.Content, bool) {
	return r.root.Content()
}

// HasSelectionAt returns true if the point falls inside the current
// selection highlight. Gesture layers use it to implement
// tap-on-selection policies without clearing.
func (r *Region) HasSelectionAt(p selectable.Point) bool {
	return r.root.HasSelectionAt(p)
}

// CanCopy returns true if the selection has content to copy.
func (r *Region) CanCopy() bool {
	_, ok := r.root.Content()
	return ok
}

// AllSelected returns true if every unit is fully selected; a
// select-all menu entry is enabled when this is false.
func (r *Region) AllSelected() bool {
	return r.root.FullySelected()
}

// send dispatches one event through the tree, parking it when layout
// is pending.
func (r *Region) send(ev selectable.Event) selectable.Result {
	res := r.root.Handle(ev)
	if res == selectable.ResultPending {
		r.pending = append(r.pending, ev)
	}
	return res
}

// publish delivers merged state to observers. While events are parked
// the last published state stands; nothing stale goes out.
func (r *Region) publish() {
	if len(r.pending) > 0 {
		return
	}
	c, _ := r.root.Content()
	r.pub.Publish(r.root.Geometry(), c)
}

// LayoutChanged replays deferred events after a layout pass and
// republishes. Hosts call it from their post-layout callback.
func (r *Region) LayoutChanged() {
	evs := r.pending
	r.pending = nil
	for _, ev := range evs {
		r.send(ev)
	}
	r.publish()
}

// feedback fires the tactile feedback hook when forced or when the
// selection's word count changed since the last check.
func (r *Region) feedback(force bool) {
	c, _ := r.root.Content()
	wc := boundary.WordCount(c.Text)
	changed := wc != r.lastWordCount
	r.lastWordCount = wc
	if r.hooks.SelectionFeedback == nil {
		return
	}
	if force || changed {
		r.hooks.SelectionFeedback()
	}
}

// pointBefore orders two points in screen order: by row, then by
// global left-to-right position.
func pointBefore(a, b selectable.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// BeginPointerSelection starts a fresh pointer selection at p. Any
// existing selection is cleared first; the session snapshot taken
// before the clear is what CancelInteraction restores.
func (r *Region) BeginPointerSelection(p selectable.Point) {
	r.saved = r.root.Save()
	r.kind = InteractionPointer
	r.anchor = p
	r.movingEdge = selectable.EdgeEnd
	r.dxValid = false
	r.lastWordCount = 0
	r.send(selectable.Clear{})
	r.send(selectable.EdgeUpdate{Edge: selectable.EdgeStart, Position: p})
	r.send(selectable.EdgeUpdate{Edge: selectable.EdgeEnd, Position: p})
	r.publish()
}

// ExtendPointerSelection moves the pointer selection to p. When p
// crosses to the other side of the anchor the moving edge swaps roles,
// so a backward drag produces a reversed selection with no transient
// inversion.
func (r *Region) ExtendPointerSelection(p selectable.Point) {
	r.updateDrag(p, selectable.GranularityCharacter)
}

// ExtendWordSelection moves the pointer selection to p, snapping both
// edges outward to word boundaries. Long-press drags use it to select
// word by word.
func (r *Region) ExtendWordSelection(p selectable.Point) {
	r.updateDrag(p, selectable.GranularityWord)
}

// updateDrag implements pointer and handle drag updates.
func (r *Region) updateDrag(p selectable.Point, g selectable.Granularity) {
	if r.kind == InteractionNone || r.kind == InteractionKeyboard {
		return
	}
	if pointBefore(p, r.anchor) {
		r.movingEdge = selectable.EdgeStart
		r.send(selectable.EdgeUpdate{Edge: selectable.EdgeEnd, Position: r.anchor, Granularity: g})
		r.send(selectable.EdgeUpdate{Edge: selectable.EdgeStart, Position: p, Granularity: g})
	} else {
		r.movingEdge = selectable.EdgeEnd
		r.send(selectable.EdgeUpdate{Edge: selectable.EdgeStart, Position: r.anchor, Granularity: g})
		r.send(selectable.EdgeUpdate{Edge: selectable.EdgeEnd, Position: p, Granularity: g})
	}
	r.dxValid = false
	r.publish()
	r.feedback(false)
	if (r.kind == InteractionStartHandle || r.kind == InteractionEndHandle) && r.hooks.MagnifierMoved != nil {
		r.hooks.MagnifierMoved(p)
	}
}

// SelectWordAt selects the word under p as a new primary interaction.
// A long press typically follows with ExtendWordSelection.
func (r *Region) SelectWordAt(p selectable.Point) {
	r.saved = r.root.Save()
	r.kind = InteractionPointer
	r.anchor = p
	r.movingEdge = selectable.EdgeEnd
	r.dxValid = false
	r.send(selectable.Clear{})
	res := r.send(selectable.SelectWord{Position: p})
	r.publish()
	if res == selectable.ResultEnd {
		c, _ := r.root.Content()
		r.lastWordCount = boundary.WordCount(c.Text)
		if r.hooks.SelectionFeedback != nil {
			r.hooks.SelectionFeedback()
		}
	}
}

// SelectParagraphAt selects the whole unit under p as a new primary
// interaction.
func (r *Region) SelectParagraphAt(p selectable.Point) {
	r.saved = r.root.Save()
	r.kind = InteractionPointer
	r.anchor = p
	r.send(selectable.Clear{})
	r.send(selectable.SelectParagraph{Position: p})
	r.publish()
}

// BeginHandleDrag starts dragging one selection handle. The opposite
// edge's position becomes the drag anchor, which is what makes a
// handle crossing swap roles continuously.
func (r *Region) BeginHandleDrag(edge selectable.Edge) error {
	g, ok := r.Geometry()
	if !ok {
		return ErrGeometryPending
	}
	if !g.HasSelection() {
		return ErrNoSelection
	}
	r.saved = r.root.Save()
	if edge == selectable.EdgeStart {
		r.kind = InteractionStartHandle
		r.anchor = edgeAnchor(g.End)
	} else {
		r.kind = InteractionEndHandle
		r.anchor = edgeAnchor(g.Start)
	}
	r.movingEdge = edge
	c, _ := r.root.Content()
	r.lastWordCount = boundary.WordCount(c.Text)
	return nil
}

// edgeAnchor converts an edge point to a mid-line anchor position.
func edgeAnchor(ep selectable.EdgePoint) selectable.Point {
	return selectable.Pt(ep.Position.X, ep.Position.Y-ep.LineHeight/2)
}

// UpdateHandleDrag moves the dragged handle to p.
func (r *Region) UpdateHandleDrag(p selectable.Point) {
	if r.kind != InteractionStartHandle && r.kind != InteractionEndHandle {
		return
	}
	r.updateDrag(p, selectable.GranularityCharacter)
}

// EndHandleDrag commits a handle drag and hides the magnifier.
func (r *Region) EndHandleDrag() {
	if r.kind != InteractionStartHandle && r.kind != InteractionEndHandle {
		return
	}
	r.kind = InteractionNone
	if r.hooks.MagnifierHidden != nil {
		r.hooks.MagnifierHidden()
	}
}

// EndInteraction commits the interaction in flight. The selection
// stands as last dispatched.
func (r *Region) EndInteraction() {
	if r.kind == InteractionStartHandle || r.kind == InteractionEndHandle {
		r.EndHandleDrag()
		return
	}
	r.kind = InteractionNone
}

// CancelInteraction rolls the tree back to the state captured when the
// interaction began. Nothing of the in-flight interaction is
// committed.
func (r *Region) CancelInteraction() {
	if r.kind == InteractionNone {
		return
	}
	wasHandle := r.kind == InteractionStartHandle || r.kind == InteractionEndHandle
	r.root.Restore(r.saved)
	r.kind = InteractionNone
	r.pending = nil
	r.publish()
	if wasHandle && r.hooks.MagnifierHidden != nil {
		r.hooks.MagnifierHidden()
	}
}

// Interaction returns the kind of interaction in flight.
func (r *Region) Interaction() InteractionKind {
	return r.kind
}

// ExtendByGranularity extends the selection's moving edge by one
// character, word, line, or document step. The extension continues
// into neighboring units when it runs off a unit's end.
func (r *Region) ExtendByGranularity(g selectable.Granularity, forward bool) {
	r.kind = InteractionKeyboard
	r.send(selectable.GranularExtend{
		Granularity: g,
		Forward:     forward,
		IsEnd:       r.movingEdge == selectable.EdgeEnd,
	})
	r.dxValid = false
	r.publish()
}

// ExtendLine extends the selection's moving edge one visual line up or
// down, keeping the caret's horizontal intent across units of
// different widths.
func (r *Region) ExtendLine(dir selectable.LineDirection) {
	r.kind = InteractionKeyboard
	if !r.dxValid {
		if g, ok := r.Geometry(); ok && g.HasSelection() {
			ep := g.End
			if r.movingEdge == selectable.EdgeStart {
				ep = g.Start
			}
			r.dx = ep.Position.X
			r.dxValid = true
		}
	}
	r.send(selectable.DirectionalExtend{
		Direction: dir,
		DX:        r.dx,
		IsEnd:     r.movingEdge == selectable.EdgeEnd,
	})
	r.publish()
}

// SelectAll selects every unit in the region.
func (r *Region) SelectAll() {
	r.kind = InteractionNone
	r.movingEdge = selectable.EdgeEnd
	r.send(selectable.SelectAll{})
	r.publish()
}

// Clear drops the whole selection. Clearing an empty region publishes
// nothing.
func (r *Region) Clear() {
	r.kind = InteractionNone
	r.send(selectable.Clear{})
	r.publish()
}

// Copy writes the merged plain text to the configured clipboard.
func (r *Region) Copy() error {
	if r.clipboard == nil {
		return ErrNoClipboard
	}
	c, ok := r.root.Content()
	if !ok {
		return ErrNoSelection
	}
	return r.clipboard.WriteText(c.Text)
}
