package observe

import "sync"

// ChangeKind describes what happened to a collection.
type ChangeKind string

const (
	// ChangeAppend means an element was added at the end.
	ChangeAppend ChangeKind = "append"
	// ChangeRemove means an element was removed.
	ChangeRemove ChangeKind = "remove"
	// ChangeReplace means an element was replaced in place.
	ChangeReplace ChangeKind = "replace"
)

// Change carries a single collection mutation to subscribers.
type Change[E any] struct {
	// Kind is the mutation type.
	Kind ChangeKind
	// Index is the position the mutation applied to.
	Index int
	// Item is the element appended, removed or newly in place.
	Item E
}

// Subscriber receives collection changes synchronously.
type Subscriber[E any] func(Change[E])

// Collection is an ordered, change-notifying container of view entries.
type Collection[E any] struct {
	mu    sync.RWMutex
	items []E
	subs  []Subscriber[E]
}

// NewCollection creates an empty collection.
func NewCollection[E any]() *Collection[E] {
	return &Collection[E]{}
}

// Len returns the number of elements held.
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// At returns the element at index i.
func (c *Collection[E]) At(i int) E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[i]
}

// Append adds an element at the end and notifies subscribers.
func (c *Collection[E]) Append(e E) {
	c.mu.Lock()
	c.items = append(c.items, e)
	index := len(c.items) - 1
	c.mu.Unlock()
	c.notify(Change[E]{Kind: ChangeAppend, Index: index, Item: e})
}

// RemoveAt removes the element at index i, shifting later elements down,
// and notifies subscribers with the removed element.
func (c *Collection[E]) RemoveAt(i int) {
	c.mu.Lock()
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.mu.Unlock()
	c.notify(Change[E]{Kind: ChangeRemove, Index: i, Item: removed})
}

// Replace swaps the element at index i and notifies subscribers.
func (c *Collection[E]) Replace(i int, e E) {
	c.mu.Lock()
	c.items[i] = e
	c.mu.Unlock()
	c.notify(Change[E]{Kind: ChangeReplace, Index: i, Item: e})
}

// Items returns a copy of the current elements in order.
func (c *Collection[E]) Items() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the index of the first element matching pred, or -1.
func (c *Collection[E]) Find(pred func(E) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i, e := range c.items {
		if pred(e) {
			return i
		}
	}
	return -1
}

// Subscribe registers a subscriber for future changes. The returned function
// removes the subscription.
func (c *Collection[E]) Subscribe(sub Subscriber[E]) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, sub)
	i := len(c.subs) - 1
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subs[i] = nil
	}
}

func (c *Collection[E]) notify(ch Change[E]) {
	c.mu.RLock()
	subs := make([]Subscriber[E], len(c.subs))
	copy(subs, c.subs)
	c.mu.RUnlock()
	for _, sub := range subs {
		if sub != nil {
			sub(ch)
		}
	}
}
