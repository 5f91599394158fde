package selectable

// Content is a unit's selected content.
type Content struct {
	// Text is the selected plain text in the unit's logical order.
	Text string
}

// SavedSelection is an opaque snapshot of a unit's selection state.
// It is produced by Save and accepted only by the Restore of the unit
// that produced it.
type SavedSelection any

// Selectable is implemented by every participant in a selection region:
// plain text paragraphs, composite registrars, and embedded widgets.
//
// Implementations mutate at most their own local selection when handling
// an event, and must leave their state untouched when returning
// ResultPending.
type Selectable interface {
	// Handle applies a selection event to the unit and returns how the
	// enclosing registrar should proceed.
	Handle(ev Event) Result

	// Geometry reports the unit's current selection shape in region
	// coordinates. A unit with no selection reports StatusNone.
	Geometry() Geometry

	// Content returns the unit's selected plain text. The second return
	// is false when the unit holds no selection or contributes no text.
	// Content is a pure read; it must not mutate selection state.
	Content() (Content, bool)

	// Bounds reports the unit's on-screen bounds in region coordinates,
	// used for hit-testing and screen ordering.
	Bounds() Rect

	// FullySelected returns true if the unit's entire content is
	// selected. Units without content report true so they do not block
	// an all-selected query over their container.
	FullySelected() bool

	// Save captures the unit's selection state for later Restore.
	Save() SavedSelection

	// Restore reinstates selection state captured by Save.
	Restore(state SavedSelection)
}

// Disableable is implemented by units that can be switched out of
// selection entirely. A disabled unit is skipped by its container as if
// it were not registered, without affecting its siblings; an event
// dispatched to it directly is silently absorbed.
type Disableable interface {
	// SelectionDisabled reports whether the unit currently opts out of
	// selection.
	SelectionDisabled() bool
}
