package region

import (
	"errors"
	"testing"

	"github.com/dshills/textselect/layout"
	"github.com/dshills/textselect/paragraph"
	"github.com/dshills/textselect/selectable"
)

// newPara lays text out on a unit cell grid at the given bounds.
func newPara(text string, bounds selectable.Rect) *paragraph.Paragraph {
	p := paragraph.New(text, layout.NewMonospace(text))
	p.SetBounds(bounds)
	return p
}

// threeRows builds a region over three stacked units:
//
//	How are you?
//	Good, and you?
//	Fine, thank you.
func threeRows(opts ...Option) *Region {
	r := New(opts...)
	r.Register(newPara("How are you?", selectable.NewRect(0, 0, 12, 1)))
	r.Register(newPara("Good, and you?", selectable.NewRect(0, 1, 14, 1)))
	r.Register(newPara("Fine, thank you.", selectable.NewRect(0, 2, 16, 1)))
	return r
}

func text(t *testing.T, r *Region) string {
	t.Helper()
	c, _ := r.Content()
	return c.Text
}

func TestPointerDragAcrossUnits(t *testing.T) {
	r := threeRows()

	r.BeginPointerSelection(selectable.Pt(4.2, 0.5))
	if got := text(t, r); got != "" {
		t.Fatalf("content after press = %q, want empty", got)
	}

	r.ExtendPointerSelection(selectable.Pt(8.2, 0.5))
	if got := text(t, r); got != "are " {
		t.Fatalf("content = %q, want %q", got, "are ")
	}

	r.ExtendPointerSelection(selectable.Pt(4.2, 2.5))
	want := "are you?\nGood, and you?\nFine"
	if got := text(t, r); got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	r.EndInteraction()

	if r.Interaction() != InteractionNone {
		t.Error("interaction still open after EndInteraction")
	}
}

func TestPointerDragBackward(t *testing.T) {
	r := threeRows()

	r.BeginPointerSelection(selectable.Pt(4.2, 0.5))
	r.ExtendPointerSelection(selectable.Pt(4.2, 2.5))

	// Back above the anchor: the moving edge swaps to the start and the
	// overshot units drop out.
	r.ExtendPointerSelection(selectable.Pt(1.2, 0.5))
	if got := text(t, r); got != "ow " {
		t.Errorf("content = %q, want %q", got, "ow ")
	}

	g, _ := r.Geometry()
	if g.Start.Position.X >= g.End.Position.X && g.Start.Position.Y >= g.End.Position.Y {
		t.Error("geometry edges inverted on a backward drag")
	}
}

func TestWordSelectAndExtension(t *testing.T) {
	r := threeRows()

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	if got := text(t, r); got != "are" {
		t.Fatalf("content = %q, want %q", got, "are")
	}
	r.EndInteraction()

	steps := []string{
		"are you",
		"are you?",
		"are you?\nGood", // crossed into the next unit
	}
	for i, want := range steps {
		r.ExtendByGranularity(selectable.GranularityWord, true)
		if got := text(t, r); got != want {
			t.Fatalf("step %d content = %q, want %q", i, got, want)
		}
	}
}

func TestLineExtensionKeepsHorizontalIntent(t *testing.T) {
	r := threeRows()

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	r.EndInteraction()

	r.ExtendLine(selectable.NextLine)
	want := "are you?\nGood, a"
	if got := text(t, r); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestWordDrag(t *testing.T) {
	r := threeRows()

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	r.ExtendWordSelection(selectable.Pt(9.2, 0.5))
	if got := text(t, r); got != "are you" {
		t.Errorf("content = %q, want %q", got, "are you")
	}
}

func TestHandleDragAndCrossing(t *testing.T) {
	r := threeRows()

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	r.EndInteraction()

	if err := r.BeginHandleDrag(selectable.EdgeEnd); err != nil {
		t.Fatalf("BeginHandleDrag: %v", err)
	}
	r.UpdateHandleDrag(selectable.Pt(10.2, 0.5))
	if got := text(t, r); got != "are yo" {
		t.Fatalf("content = %q, want %q", got, "are yo")
	}

	// Crossing the opposite handle swaps roles mid-drag; the selection
	// stays well formed throughout.
	r.UpdateHandleDrag(selectable.Pt(1.2, 0.5))
	if got := text(t, r); got != "ow " {
		t.Fatalf("content after crossing = %q, want %q", got, "ow ")
	}
	g, ok := r.Geometry()
	if !ok || g.Status != selectable.StatusUncollapsed {
		t.Errorf("geometry = %+v, %v, want an uncollapsed selection", g, ok)
	}

	r.EndHandleDrag()
	if r.Interaction() != InteractionNone {
		t.Error("interaction still open after EndHandleDrag")
	}
}

func TestHandleDragErrors(t *testing.T) {
	r := threeRows()

	if err := r.BeginHandleDrag(selectable.EdgeStart); !errors.Is(err, ErrNoSelection) {
		t.Errorf("BeginHandleDrag with no selection = %v, want ErrNoSelection", err)
	}
}

func TestCancelRestoresPriorSelection(t *testing.T) {
	r := threeRows()

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	r.EndInteraction()

	if err := r.BeginHandleDrag(selectable.EdgeEnd); err != nil {
		t.Fatalf("BeginHandleDrag: %v", err)
	}
	r.UpdateHandleDrag(selectable.Pt(4.2, 2.5))
	if got := text(t, r); got == "are" {
		t.Fatal("drag did not change the selection")
	}

	r.CancelInteraction()
	if got := text(t, r); got != "are" {
		t.Errorf("content after cancel = %q, want %q", got, "are")
	}
	if r.Interaction() != InteractionNone {
		t.Error("interaction still open after cancel")
	}
}

func TestCancelNewSelectionRestoresEmpty(t *testing.T) {
	r := threeRows()

	r.BeginPointerSelection(selectable.Pt(4.2, 0.5))
	r.ExtendPointerSelection(selectable.Pt(8.2, 0.5))
	r.CancelInteraction()

	if _, ok := r.Content(); ok {
		t.Error("cancelled fresh selection left content behind")
	}
}

func TestSelectAllAndClear(t *testing.T) {
	r := threeRows()

	if r.AllSelected() {
		// Empty units vacuously full-select; three non-empty units do not.
		t.Fatal("AllSelected() = true on an empty region with non-empty units")
	}
	r.SelectAll()
	if !r.AllSelected() {
		t.Error("AllSelected() = false after SelectAll")
	}
	want := "How are you?\nGood, and you?\nFine, thank you."
	if got := text(t, r); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}

	r.Clear()
	if r.CanCopy() {
		t.Error("CanCopy() = true after Clear")
	}
}

// memClipboard records the last written text.
type memClipboard struct {
	text    string
	written int
}

func (c *memClipboard) WriteText(text string) error {
	c.text = text
	c.written++
	return nil
}

func TestCopy(t *testing.T) {
	bare := threeRows()
	bare.SelectAll()
	if err := bare.Copy(); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("Copy without clipboard = %v, want ErrNoClipboard", err)
	}

	clip := &memClipboard{}
	r := threeRows(WithClipboard(clip))

	if err := r.Copy(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Copy without selection = %v, want ErrNoSelection", err)
	}

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	r.EndInteraction()
	if err := r.Copy(); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if clip.text != "are" || clip.written != 1 {
		t.Errorf("clipboard = %q after %d writes, want \"are\" after 1", clip.text, clip.written)
	}
}

func TestHooks(t *testing.T) {
	var (
		feedback int
		moved    []selectable.Point
		hidden   int
	)
	r := threeRows(WithHooks(Hooks{
		SelectionFeedback: func() { feedback++ },
		MagnifierMoved:    func(p selectable.Point) { moved = append(moved, p) },
		MagnifierHidden:   func() { hidden++ },
	}))

	r.SelectWordAt(selectable.Pt(5.2, 0.5))
	r.EndInteraction()
	if feedback != 1 {
		t.Errorf("feedback after word select = %d, want 1", feedback)
	}

	if err := r.BeginHandleDrag(selectable.EdgeEnd); err != nil {
		t.Fatalf("BeginHandleDrag: %v", err)
	}
	r.UpdateHandleDrag(selectable.Pt(10.2, 0.5))
	if len(moved) == 0 {
		t.Error("magnifier never moved during handle drag")
	}
	r.EndHandleDrag()
	if hidden != 1 {
		t.Errorf("magnifier hidden %d times, want 1", hidden)
	}
}

func TestDragFeedbackFiresOnWordCrossings(t *testing.T) {
	feedback := 0
	r := threeRows(WithHooks(Hooks{SelectionFeedback: func() { feedback++ }}))

	r.BeginPointerSelection(selectable.Pt(4.2, 0.5))
	r.ExtendPointerSelection(selectable.Pt(5.2, 0.5)) // "a": first word
	first := feedback
	if first == 0 {
		t.Fatal("no feedback on entering the first word")
	}
	r.ExtendPointerSelection(selectable.Pt(6.2, 0.5)) // still inside "are"
	if feedback != first {
		t.Errorf("feedback fired inside a word: %d, want %d", feedback, first)
	}
	r.ExtendPointerSelection(selectable.Pt(9.2, 0.5)) // into "you"
	if feedback <= first {
		t.Error("no feedback on crossing into the next word")
	}
}

func TestPendingLayoutDefersPublish(t *testing.T) {
	deferred := layout.NewDeferred(layout.NewMonospace("How are you?"))
	p := paragraph.New("How are you?", deferred)
	p.SetBounds(selectable.NewRect(0, 0, 12, 1))

	r := New()
	r.Register(p)

	published := 0
	r.OnGeometryChanged(func(selectable.Geometry) { published++ })

	r.BeginPointerSelection(selectable.Pt(4.2, 0.5))
	if published != 0 {
		t.Fatalf("published %d times before layout, want 0", published)
	}
	if _, ok := r.Geometry(); ok {
		t.Fatal("Geometry reported ready while events are deferred")
	}

	deferred.MarkReady(true)
	r.LayoutChanged()
	if published != 1 {
		t.Errorf("published %d times after layout, want 1", published)
	}
	g, ok := r.Geometry()
	if !ok || g.Status != selectable.StatusCollapsed {
		t.Errorf("geometry = %+v, %v, want a collapsed selection", g, ok)
	}
}

func TestListenersFireOncePerCommand(t *testing.T) {
	r := threeRows()

	var contents []string
	r.OnSelectionChanged(func(c selectable.Content) { contents = append(contents, c.Text) })

	r.Clear() // clearing an empty region notifies nobody
	r.BeginPointerSelection(selectable.Pt(4.2, 0.5))
	r.ExtendPointerSelection(selectable.Pt(8.2, 0.5))
	r.ExtendPointerSelection(selectable.Pt(8.2, 0.5)) // no change, no event
	r.Clear()

	want := []string{"are ", ""}
	if len(contents) != len(want) {
		t.Fatalf("notifications = %v, want %v", contents, want)
	}
	for i := range want {
		if contents[i] != want[i] {
			t.Errorf("notification %d = %q, want %q", i, contents[i], want[i])
		}
	}
}

func TestHasSelectionAt(t *testing.T) {
	r := threeRows()
	r.SelectWordAt(selectable.Pt(5.2, 0.5))

	if !r.HasSelectionAt(selectable.Pt(5, 0.5)) {
		t.Error("HasSelectionAt inside the highlight = false")
	}
	if r.HasSelectionAt(selectable.Pt(5, 2.5)) {
		t.Error("HasSelectionAt outside the highlight = true")
	}
}
