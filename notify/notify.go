// Package notify delivers selection changes to observers.
//
// Instead of ad hoc callback invocation scattered through the dispatch
// path, every region ends a dispatch pass with one explicit Publish.
// The publisher compares the merged values against the last published
// ones and notifies only the streams that actually changed, so one
// interaction yields at most one notification per observer and a no-op
// (such as clearing an already-empty selection) yields none.
package notify

import (
	"github.com/google/uuid"

	"github.com/dshills/textselect/selectable"
)

// ContentListener receives the merged plain text after a change.
type ContentListener func(content selectable.Content)

// GeometryListener receives the merged selection shape after a change.
type GeometryListener func(geometry selectable.Geometry)

// Subscription identifies a registered listener and can cancel it.
type Subscription struct {
	id     string
	cancel func(id string)
}

// ID returns the subscription's unique identifier.
func (s Subscription) ID() string {
	return s.id
}

// Cancel removes the listener. Cancelling twice is harmless.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel(s.id)
	}
}

// contentSub pairs a listener with its identity; listeners are notified
// in subscription order.
type contentSub struct {
	id string
	fn ContentListener
}

type geometrySub struct {
	id string
	fn GeometryListener
}

// Publisher batches selection notifications for one region.
// The zero value is not usable; create one with NewPublisher.
type Publisher struct {
	content  []contentSub
	geometry []geometrySub

	lastContent  selectable.Content
	lastGeometry selectable.Geometry
	published    bool
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// OnContent registers a listener for merged content changes.
func (p *Publisher) OnContent(fn ContentListener) Subscription {
	id := uuid.New().String()
	p.content = append(p.content, contentSub{id: id, fn: fn})
	return Subscription{id: id, cancel: p.remove}
}

// OnGeometry registers a listener for merged geometry changes.
func (p *Publisher) OnGeometry(fn GeometryListener) Subscription {
	id := uuid.New().String()
	p.geometry = append(p.geometry, geometrySub{id: id, fn: fn})
	return Subscription{id: id, cancel: p.remove}
}

// remove drops the subscription with the given id.
func (p *Publisher) remove(id string) {
	for i, s := range p.content {
		if s.id == id {
			p.content = append(p.content[:i], p.content[i+1:]...)
			return
		}
	}
	for i, s := range p.geometry {
		if s.id == id {
			p.geometry = append(p.geometry[:i], p.geometry[i+1:]...)
			return
		}
	}
}

// Publish delivers the merged state to listeners whose stream changed
// since the last publish. The baseline before the first publish is the
// empty state, so publishing an empty selection into a fresh publisher
// delivers nothing.
func (p *Publisher) Publish(geometry selectable.Geometry, content selectable.Content) {
	geometryChanged := !p.lastGeometry.Equal(geometry)
	contentChanged := p.lastContent != content

	p.lastGeometry = geometry
	p.lastContent = content
	p.published = true

	if geometryChanged {
		for _, s := range p.geometry {
			s.fn(geometry)
		}
	}
	if contentChanged {
		for _, s := range p.content {
			s.fn(content)
		}
	}
}

// LastGeometry returns the most recently published geometry. The second
// return is false before the first publish.
func (p *Publisher) LastGeometry() (selectable.Geometry, bool) {
	return p.lastGeometry, p.published
}

// LastContent returns the most recently published content. The second
// return is false before the first publish.
func (p *Publisher) LastContent() (selectable.Content, bool) {
	return p.lastContent, p.published
}
