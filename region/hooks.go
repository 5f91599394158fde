package region

import (
	"errors"

	"github.com/dshills/textselect/selectable"
)

// Sentinel errors for region commands.
var (
	// ErrNoSelection is returned when a command needs an existing
	// selection and none is present.
	ErrNoSelection = errors.New("no selection")

	// ErrNoClipboard is returned by Copy when no clipboard is
	// configured.
	ErrNoClipboard = errors.New("no clipboard configured")

	// ErrGeometryPending is returned when a command needs the merged
	// geometry and a layout pass has not completed yet.
	ErrGeometryPending = errors.New("selection geometry pending layout")
)

// Clipboard writes the merged plain text to the platform clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Hooks are optional callbacks into the platform layer. Nil fields are
// skipped.
type Hooks struct {
	// SelectionFeedback fires once per word boundary crossed during a
	// drag and on every successful word select, for tactile feedback.
	SelectionFeedback func()

	// MagnifierMoved republishes the gesture position on every handle
	// drag update, for an external magnifier overlay.
	MagnifierMoved func(p selectable.Point)

	// MagnifierHidden fires when a handle drag ends or is cancelled.
	MagnifierHidden func()
}

// Option configures a Region.
type Option func(*Region)

// WithClipboard supplies the clipboard used by Copy.
func WithClipboard(cb Clipboard) Option {
	return func(r *Region) { r.clipboard = cb }
}

// WithHooks supplies the platform callbacks.
func WithHooks(h Hooks) Option {
	return func(r *Region) { r.hooks = h }
}
