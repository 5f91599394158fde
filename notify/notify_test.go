package notify

import (
	"testing"

	"github.com/dshills/textselect/selectable"
)

func TestPublishDeliversOncePerChange(t *testing.T) {
	p := NewPublisher()

	var contents []string
	p.OnContent(func(c selectable.Content) { contents = append(contents, c.Text) })

	p.Publish(selectable.Geometry{}, selectable.Content{Text: "are"})
	p.Publish(selectable.Geometry{}, selectable.Content{Text: "are"})
	p.Publish(selectable.Geometry{}, selectable.Content{Text: "are you"})

	want := []string{"are", "are you"}
	if len(contents) != len(want) {
		t.Fatalf("got %d notifications, want %d: %v", len(contents), len(want), contents)
	}
	for i := range want {
		if contents[i] != want[i] {
			t.Errorf("notification %d = %q, want %q", i, contents[i], want[i])
		}
	}
}

func TestPublishEmptyIntoFreshPublisherIsSilent(t *testing.T) {
	p := NewPublisher()

	fired := 0
	p.OnContent(func(selectable.Content) { fired++ })

	// Clearing a selection that never existed is not a change.
	p.Publish(selectable.Geometry{}, selectable.Content{})
	if fired != 0 {
		t.Errorf("empty first publish fired %d times, want 0", fired)
	}

	p.Publish(selectable.Geometry{}, selectable.Content{Text: "a"})
	p.Publish(selectable.Geometry{}, selectable.Content{})
	if fired != 2 {
		t.Errorf("fired %d times total, want 2", fired)
	}
}

func TestGeometryAndContentStreamsAreIndependent(t *testing.T) {
	p := NewPublisher()

	geoms, conts := 0, 0
	p.OnGeometry(func(selectable.Geometry) { geoms++ })
	p.OnContent(func(selectable.Content) { conts++ })

	g := selectable.Geometry{Status: selectable.StatusUncollapsed}
	p.Publish(g, selectable.Content{Text: "x"})

	// Geometry moves while the text stays the same: only the geometry
	// stream fires.
	g.Start.Position = selectable.Pt(5, 0)
	p.Publish(g, selectable.Content{Text: "x"})

	if geoms != 2 {
		t.Errorf("geometry notifications = %d, want 2", geoms)
	}
	if conts != 1 {
		t.Errorf("content notifications = %d, want 1", conts)
	}
}

func TestSubscriptionCancel(t *testing.T) {
	p := NewPublisher()

	fired := 0
	sub := p.OnContent(func(selectable.Content) { fired++ })
	if sub.ID() == "" {
		t.Error("subscription ID is empty")
	}

	p.Publish(selectable.Geometry{}, selectable.Content{Text: "a"})
	sub.Cancel()
	sub.Cancel() // second cancel is harmless
	p.Publish(selectable.Geometry{}, selectable.Content{Text: "b"})

	if fired != 1 {
		t.Errorf("cancelled listener fired %d times, want 1", fired)
	}
}

func TestLastPublished(t *testing.T) {
	p := NewPublisher()

	if _, ok := p.LastContent(); ok {
		t.Error("LastContent ok before any publish")
	}

	g := selectable.Geometry{Status: selectable.StatusCollapsed}
	p.Publish(g, selectable.Content{Text: "hi"})

	if got, ok := p.LastContent(); !ok || got.Text != "hi" {
		t.Errorf("LastContent() = %q, %v", got.Text, ok)
	}
	if got, ok := p.LastGeometry(); !ok || got.Status != selectable.StatusCollapsed {
		t.Errorf("LastGeometry() = %+v, %v", got, ok)
	}
}
