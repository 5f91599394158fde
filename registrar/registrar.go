package registrar

import (
	"strings"

	"github.com/dshills/textselect/selectable"
)

// Handle is a stable identifier for a registered unit. It remains valid
// until the unit is unregistered, independent of tree mutations.
type Handle uint64

// entry is one arena slot.
type entry struct {
	handle Handle
	unit   selectable.Selectable
	order  int // registration order, doubles as paint order
}

// Registrar composes selectable units and routes selection events to
// them. It implements selectable.Selectable, so registrars nest.
//
// Registrar is not safe for concurrent use; all dispatch is synchronous
// and single-threaded by design.
type Registrar struct {
	nextHandle Handle
	nextOrder  int
	entries    []*entry
	index      map[Handle]*entry

	disabled bool

	// Edge ownership from the last dispatch, by handle; 0 when unknown.
	startOwner Handle
	endOwner   Handle

	// Mutations requested mid-dispatch are queued here.
	dispatching    bool
	pendingAdds    []*entry
	pendingRemoves []Handle
}

// savedRegistrar is the Save/Restore snapshot of a Registrar.
type savedRegistrar struct {
	states     map[Handle]selectable.SavedSelection
	startOwner Handle
	endOwner   Handle
}

// New creates an empty registrar.
func New() *Registrar {
	return &Registrar{index: make(map[Handle]*entry)}
}

// Register adds a unit to the tree and returns its handle. If a
// dispatch is in progress the addition takes effect when it completes.
func (r *Registrar) Register(unit selectable.Selectable) Handle {
	r.nextHandle++
	e := &entry{handle: r.nextHandle, unit: unit, order: r.nextOrder}
	r.nextOrder++
	if r.dispatching {
		r.pendingAdds = append(r.pendingAdds, e)
	} else {
		r.entries = append(r.entries, e)
		r.index[e.handle] = e
	}
	return e.handle
}

// Unregister removes a unit from the tree. If a dispatch is in progress
// the removal takes effect when it completes. A unit holding a
// selection simply disappears from the next merge; no reference to it
// is retained.
func (r *Registrar) Unregister(h Handle) {
	if r.dispatching {
		r.pendingRemoves = append(r.pendingRemoves, h)
		return
	}
	r.remove(h)
}

// remove applies an unregistration immediately.
func (r *Registrar) remove(h Handle) {
	e, ok := r.index[h]
	if !ok {
		return
	}
	delete(r.index, h)
	for i, cand := range r.entries {
		if cand == e {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	if r.startOwner == h {
		r.startOwner = 0
	}
	if r.endOwner == h {
		r.endOwner = 0
	}
}

// flushPending applies mutations queued during a dispatch.
func (r *Registrar) flushPending() {
	for _, e := range r.pendingAdds {
		r.entries = append(r.entries, e)
		r.index[e.handle] = e
	}
	r.pendingAdds = nil
	for _, h := range r.pendingRemoves {
		r.remove(h)
	}
	r.pendingRemoves = nil
}

// Len returns the number of registered units, excluding queued
// mutations.
func (r *Registrar) Len() int {
	return len(r.entries)
}

// SetDisabled switches the registrar and its whole subtree out of
// selection. Disabling drops any selection the subtree holds.
func (r *Registrar) SetDisabled(disabled bool) {
	if disabled && !r.disabled {
		for _, e := range r.active() {
			e.unit.Handle(selectable.Clear{})
		}
		r.startOwner, r.endOwner = 0, 0
	}
	r.disabled = disabled
}

// SelectionDisabled reports whether the registrar opts out of
// selection.
func (r *Registrar) SelectionDisabled() bool {
	return r.disabled
}

// active returns the registered units that participate in selection, in
// screen order. Disabled units are skipped entirely.
func (r *Registrar) active() []*entry {
	out := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		if d, ok := e.unit.(selectable.Disableable); ok && d.SelectionDisabled() {
			continue
		}
		out = append(out, e)
	}
	screenSort(out)
	return out
}

// Bounds reports the union of all children's bounds.
func (r *Registrar) Bounds() selectable.Rect {
	var b selectable.Rect
	for _, e := range r.entries {
		b = b.Union(e.unit.Bounds())
	}
	return b
}

// UnitAt returns the unit under a point, preferring the topmost in
// paint order. The second return is false when no unit contains the
// point.
func (r *Registrar) UnitAt(p selectable.Point) (selectable.Selectable, bool) {
	if r.disabled {
		return nil, false
	}
	units := r.active()
	// Later registration paints on top.
	var best *entry
	for _, e := range units {
		if !e.unit.Bounds().Contains(p) {
			continue
		}
		if best == nil || e.order > best.order {
			best = e
		}
	}
	if best == nil {
		return nil, false
	}
	return best.unit, true
}

// HasSelectionAt returns true if the point falls inside a selection
// highlight box. Gesture layers use it to decide whether a tap lands
// on the existing selection.
func (r *Registrar) HasSelectionAt(p selectable.Point) bool {
	for _, e := range r.active() {
		for _, rect := range e.unit.Geometry().Rects {
			if rect.Contains(p) {
				return true
			}
		}
	}
	return false
}

// Geometry reports the merged selection shape of the subtree: the start
// edge of the first unit in screen order holding a selection, the end
// edge of the last, and every unit's highlight boxes in between.
func (r *Registrar) Geometry() selectable.Geometry {
	if r.disabled {
		return selectable.Geometry{}
	}
	var (
		first, last *selectable.Geometry
		merged      selectable.Geometry
		count       int
	)
	for _, e := range r.active() {
		g := e.unit.Geometry()
		if !g.HasSelection() {
			continue
		}
		if first == nil {
			first = &g
		}
		last = &g
		count++
		merged.Rects = append(merged.Rects, g.Rects...)
		if g.HasContent {
			merged.HasContent = true
		}
	}
	if first == nil {
		return selectable.Geometry{}
	}
	merged.Start = first.Start
	merged.End = last.End
	if count == 1 {
		merged.Status = first.Status
	} else {
		merged.Status = selectable.StatusUncollapsed
	}
	return merged
}

// Content returns the merged plain text of the subtree in screen order.
// Units without content are skipped with no separator; contributing
// units on distinct visual rows are joined with a newline, units
// sharing a row concatenate directly in visual order.
func (r *Registrar) Content() (selectable.Content, bool) {
	if r.disabled {
		return selectable.Content{}, false
	}
	var (
		sb       strings.Builder
		any      bool
		prevRect selectable.Rect
	)
	for _, e := range r.active() {
		c, ok := e.unit.Content()
		if !ok {
			continue
		}
		if any && !sameRow(prevRect, e.unit.Bounds()) {
			sb.WriteString("\n")
		}
		sb.WriteString(c.Text)
		prevRect = e.unit.Bounds()
		any = true
	}
	if !any {
		return selectable.Content{}, false
	}
	return selectable.Content{Text: sb.String()}, true
}

// FullySelected reports whether every participating unit is fully
// selected. An empty or disabled registrar reports true so it does not
// block an enclosing all-selected query.
func (r *Registrar) FullySelected() bool {
	if r.disabled {
		return true
	}
	for _, e := range r.active() {
		if !e.unit.FullySelected() {
			return false
		}
	}
	return true
}

// Save captures the selection state of the whole subtree.
func (r *Registrar) Save() selectable.SavedSelection {
	saved := savedRegistrar{
		states:     make(map[Handle]selectable.SavedSelection, len(r.entries)),
		startOwner: r.startOwner,
		endOwner:   r.endOwner,
	}
	for _, e := range r.entries {
		saved.states[e.handle] = e.unit.Save()
	}
	return saved
}

// Restore reinstates subtree selection state captured by Save. Units
// registered since the snapshot keep their current state; units gone
// since are ignored.
func (r *Registrar) Restore(state selectable.SavedSelection) {
	saved, ok := state.(savedRegistrar)
	if !ok {
		return
	}
	for h, s := range saved.states {
		if e, ok := r.index[h]; ok {
			e.unit.Restore(s)
		}
	}
	r.startOwner = saved.startOwner
	r.endOwner = saved.endOwner
}
