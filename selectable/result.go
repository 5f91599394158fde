package selectable

// Result is a unit's answer to a dispatched selection event.
type Result uint8

const (
	// ResultNone means the unit holds no selection and the event did not
	// establish one.
	ResultNone Result = iota

	// ResultPending means the unit's layout is not ready. The event must
	// be retried after the next layout pass; the unit's state and the
	// reported geometry are unchanged.
	ResultPending

	// ResultPrevious means the event's target lies before this unit in
	// screen order. The unit has moved its edge to its own start; the
	// registrar should continue with the previous unit.
	ResultPrevious

	// ResultNext means the event's target lies after this unit in screen
	// order. The unit has moved its edge to its own end; the registrar
	// should continue with the next unit.
	ResultNext

	// ResultEnd means the event was fully consumed by this unit.
	ResultEnd
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultPending:
		return "pending"
	case ResultPrevious:
		return "previous"
	case ResultNext:
		return "next"
	case ResultEnd:
		return "end"
	default:
		return "none"
	}
}
