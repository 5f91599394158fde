package registrar

import "github.com/dshills/textselect/selectable"

// Handle routes a selection event through the subtree and returns the
// outcome. A disabled registrar absorbs every event. Dispatch is
// synchronous; tree mutations requested by handlers are applied after
// the dispatch returns.
func (r *Registrar) Handle(ev selectable.Event) selectable.Result {
	if r.disabled {
		return selectable.ResultEnd
	}
	r.dispatching = true
	defer func() {
		r.dispatching = false
		r.flushPending()
	}()

	units := r.active()
	if len(units) == 0 {
		return selectable.ResultNone
	}

	switch e := ev.(type) {
	case selectable.EdgeUpdate:
		return r.dispatchEdgeUpdate(units, e)
	case selectable.SelectWord:
		return r.dispatchPoint(units, ev, e.Position)
	case selectable.SelectParagraph:
		return r.dispatchPoint(units, ev, e.Position)
	case selectable.GranularExtend:
		return r.dispatchExtend(units, ev, e.IsEnd, e.Forward)
	case selectable.DirectionalExtend:
		return r.dispatchExtend(units, ev, e.IsEnd, e.Direction == selectable.NextLine)
	case selectable.SelectAll:
		for _, e := range units {
			if res := e.unit.Handle(ev); res == selectable.ResultPending {
				return res
			}
		}
		r.startOwner = units[0].handle
		r.endOwner = units[len(units)-1].handle
		return selectable.ResultEnd
	case selectable.Clear:
		for _, e := range units {
			e.unit.Handle(ev)
		}
		r.startOwner, r.endOwner = 0, 0
		return selectable.ResultEnd
	default:
		return selectable.ResultNone
	}
}

// dispatchEdgeUpdate walks the edge event from the unit that owned the
// edge (or the unit nearest the point) toward the point's unit. Every
// unit on the way receives the event; units the edge passes through
// clamp it to their extremity, which is what selects them entirely.
func (r *Registrar) dispatchEdgeUpdate(units []*entry, e selectable.EdgeUpdate) selectable.Result {
	owner := r.endOwner
	if e.Edge == selectable.EdgeStart {
		owner = r.startOwner
	}
	idx := indexOf(units, owner)
	if idx < 0 {
		idx = startIndexForPoint(units, e.Position)
	}

	final, idx := r.walk(units, e, idx)
	if final == selectable.ResultPending {
		return final
	}
	r.setOwner(e.Edge, units[idx].handle)
	r.reconcile(units)
	return final
}

// dispatchPoint routes a point-addressed event to the unit under the
// point; the topmost unit in paint order wins. No unit under the point
// is not an error: the event is consumed with nothing changed.
func (r *Registrar) dispatchPoint(units []*entry, ev selectable.Event, p selectable.Point) selectable.Result {
	var target *entry
	for _, e := range units {
		if !e.unit.Bounds().Contains(p) {
			continue
		}
		if target == nil || e.order > target.order {
			target = e
		}
	}
	if target == nil {
		return selectable.ResultEnd
	}
	res := target.unit.Handle(ev)
	if res == selectable.ResultEnd {
		r.startOwner = target.handle
		r.endOwner = target.handle
		r.reconcile(units)
	}
	return res
}

// dispatchExtend walks a keyboard extension from the unit owning the
// moving edge; with no selection the walk enters from the extremity the
// extension travels from.
func (r *Registrar) dispatchExtend(units []*entry, ev selectable.Event, isEnd, forward bool) selectable.Result {
	owner := r.startOwner
	if isEnd {
		owner = r.endOwner
	}
	idx := indexOf(units, owner)
	if idx < 0 {
		if forward {
			idx = 0
		} else {
			idx = len(units) - 1
		}
	}

	final, idx := r.walk(units, ev, idx)
	if final == selectable.ResultPending {
		return final
	}
	edge := selectable.EdgeStart
	if isEnd {
		edge = selectable.EdgeEnd
	}
	r.setOwner(edge, units[idx].handle)
	r.reconcile(units)
	return final
}

// walk dispatches ev starting at idx and follows ResultPrevious and
// ResultNext to neighboring units in screen order. A reversal of walk
// direction stops at the current unit; the list boundary propagates the
// residual result to the enclosing registrar.
func (r *Registrar) walk(units []*entry, ev selectable.Event, idx int) (selectable.Result, int) {
	lastStep := 0
	for {
		res := units[idx].unit.Handle(ev)
		switch res {
		case selectable.ResultPending:
			return res, idx
		case selectable.ResultPrevious:
			if idx == 0 || lastStep == 1 {
				return res, idx
			}
			idx--
			lastStep = -1
		case selectable.ResultNext:
			if idx == len(units)-1 || lastStep == -1 {
				return res, idx
			}
			idx++
			lastStep = 1
		default:
			return res, idx
		}
	}
}

// reconcile clears every unit outside the span between the two edge
// owners, so units the selection has retreated from or overshot drop
// their ranges.
func (r *Registrar) reconcile(units []*entry) {
	si := indexOf(units, r.startOwner)
	ei := indexOf(units, r.endOwner)
	if si < 0 && ei < 0 {
		return
	}
	if si < 0 {
		si = ei
	}
	if ei < 0 {
		ei = si
	}
	lo, hi := si, ei
	if lo > hi {
		lo, hi = hi, lo
	}
	for i, e := range units {
		if i < lo || i > hi {
			e.unit.Handle(selectable.Clear{})
		}
	}
}

// setOwner records which unit holds an edge.
func (r *Registrar) setOwner(edge selectable.Edge, h Handle) {
	if edge == selectable.EdgeStart {
		r.startOwner = h
	} else {
		r.endOwner = h
	}
}

// indexOf returns the position of a handle within units, or -1.
func indexOf(units []*entry, h Handle) int {
	if h == 0 {
		return -1
	}
	for i, e := range units {
		if e.handle == h {
			return i
		}
	}
	return -1
}

// startIndexForPoint returns the unit at or just after the point in
// screen order, falling back to the last unit.
func startIndexForPoint(units []*entry, p selectable.Point) int {
	for i, e := range units {
		if pointRelation(e.unit.Bounds(), p) <= 0 {
			return i
		}
	}
	return len(units) - 1
}
