// Package events provides named, typed publish/subscribe topics.
//
// Each component owns the topics it publishes as exported fields, and the
// composition root subscribes one component's handlers to another's topics.
// Topics deliver synchronously on the publishing goroutine, which for cw is
// always the Bubble Tea update loop.
package events

import "sync"

// Signal is the payload of topics that carry no data.
type Signal struct{}

// Topic is a named channel of events carrying a payload of type T.
type Topic[T any] struct {
	name string

	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewTopic creates a topic. The name identifies it in logs and tests.
func NewTopic[T any](name string) *Topic[T] {
	return &Topic[T]{name: name}
}

// Name returns the topic name (e.g. "set-dates").
func (t *Topic[T]) Name() string {
	return t.name
}

// Subscribe registers fn and returns a subscription that removes it.
func (t *Topic[T]) Subscribe(fn func(T)) *Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscriber[T]{id: id, fn: fn})

	return &Subscription{cancel: func() { t.remove(id) }}
}

// Publish delivers v to every subscriber in subscription order.
// Handlers may subscribe or unsubscribe while a publish is in progress; the
// change applies to the next publish.
func (t *Topic[T]) Publish(v T) {
	t.mu.Lock()
	subs := make([]subscriber[T], len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (t *Topic[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

func (t *Topic[T]) remove(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, s := range t.subs {
		if s.id == id {
			t.subs = append(t.subs[:i], t.subs[i+1:]...)
			return
		}
	}
}

// Subscription is the handle returned by Topic.Subscribe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe removes the handler. Calling it more than once is a no-op,
// as is calling it on a nil subscription.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Forward re-publishes every event from src on dst.
func Forward[T any](src, dst *Topic[T]) *Subscription {
	return src.Subscribe(dst.Publish)
}

// Group collects subscriptions so they can be released together.
type Group struct {
	subs []*Subscription
}

// Add records s in the group.
func (g *Group) Add(s *Subscription) {
	g.subs = append(g.subs, s)
}

// Unsubscribe releases every subscription in the group and empties it.
func (g *Group) Unsubscribe() {
	for _, s := range g.subs {
		s.Unsubscribe()
	}
	g.subs = nil
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	return len(g.subs)
}
