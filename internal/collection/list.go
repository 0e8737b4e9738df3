// Package collection provides an ordered, index-addressable list that tells
// its subscribers about every mutation.
package collection

import (
	"log"

	"seqwizard/internal/assert"
)

// Listener receives mutation notifications. lo and hi are inclusive indices
// into the list as it was (removals) or is (inserts, changes) at the time of
// the call.
type Listener interface {
	ElementsInserted(lo, hi int)
	ElementsRemoved(lo, hi int)
	ElementsChanged(lo, hi int)
}

// List is an observable ordered collection. Notifications are dispatched
// synchronously on the caller's goroutine; List is not safe for concurrent use.
type List struct {
	items     []any
	listeners []*subscription
}

type subscription struct {
	listener Listener
}

func New(items ...any) *List {
	return &List{items: append([]any(nil), items...)}
}

func (l *List) Len() int {
	return len(l.items)
}

// At returns the item at index i. Out of range indices are a programming
// error.
func (l *List) At(i int) any {
	assert.True(i >= 0 && i < len(l.items), "collection: index out of range")
	return l.items[i]
}

// Subscribe registers a listener and returns a func that removes it again.
func (l *List) Subscribe(listener Listener) func() {
	assert.NotNil(listener, "collection: listener must not be nil")

	sub := &subscription{listener: listener}
	l.listeners = append(l.listeners, sub)

	return func() {
		for i, s := range l.listeners {
			if s == sub {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *List) Append(items ...any) {
	if len(items) == 0 {
		return
	}
	lo := len(l.items)
	l.items = append(l.items, items...)
	l.emit(func(ln Listener) { ln.ElementsInserted(lo, len(l.items)-1) })
}

// Insert places item at index i, shifting later items up.
func (l *List) Insert(i int, item any) {
	assert.True(i >= 0 && i <= len(l.items), "collection: insert index out of range")

	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.emit(func(ln Listener) { ln.ElementsInserted(i, i) })
}

// Set replaces the item at index i.
func (l *List) Set(i int, item any) {
	assert.True(i >= 0 && i < len(l.items), "collection: set index out of range")

	l.items[i] = item
	l.emit(func(ln Listener) { ln.ElementsChanged(i, i) })
}

// Remove deletes the item at index i.
func (l *List) Remove(i int) {
	l.RemoveRange(i, i)
}

// RemoveRange deletes items lo through hi inclusive.
func (l *List) RemoveRange(lo, hi int) {
	assert.True(lo >= 0 && lo <= hi && hi < len(l.items), "collection: remove range out of bounds")

	l.items = append(l.items[:lo], l.items[hi+1:]...)
	l.emit(func(ln Listener) { ln.ElementsRemoved(lo, hi) })
}

func (l *List) emit(notify func(Listener)) {
	// Listeners may unsubscribe while being notified.
	subs := append([]*subscription(nil), l.listeners...)
	log.Printf("collection: notifying %d listener(s), len=%d", len(subs), len(l.items))
	for _, s := range subs {
		notify(s.listener)
	}
}
