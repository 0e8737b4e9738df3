// Package sequence drives wizard-style progression through an ordered series
// of step views. A Source decides which view comes first, next and previous;
// the Engine gates forward moves on the Verifiable capability and keeps the
// Previous, Next and Finish commands in step with the Source.
package sequence

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Source is the navigation contract every strategy implements.
//
// Next and Previous are only called after the matching Has* query returned
// true for the same current view, and they commit the move: a Source that
// keeps a cursor or history updates it before returning the new view. First
// rewinds the Source to the start of the sequence.
type Source interface {
	First() tea.Model
	HasNext(current tea.Model) bool
	Next(current tea.Model) tea.Model
	HasPrevious(current tea.Model) bool
	Previous(current tea.Model) tea.Model
}

// Verifiable is implemented by step views that must accept their own input
// before the sequence may move forward or finish. Views without it always
// pass.
type Verifiable interface {
	Verify() bool
}

// Sequenceable is implemented by step views that name their own successor.
// Next may return something other than a tea.Model, in which case there is no
// next view.
type Sequenceable interface {
	HasNext() bool
	Next() any
}

// Pather is implemented by sources that can tell which views were passed on
// the way to current. Path returns them in the order they were reached,
// current last.
type Pather interface {
	Path(current tea.Model) []tea.Model
}

// Event is sent from a Source back to the Engine it drives.
type Event int

const (
	// EventMutated means the data behind the Source changed; command state
	// must be recomputed but the display stays as it is.
	EventMutated Event = iota
	// EventRebound means the Source now reads from different data and the
	// sequence has to start over.
	EventRebound
)

func (e Event) String() string {
	switch e {
	case EventMutated:
		return "mutated"
	case EventRebound:
		return "rebound"
	default:
		return "unknown"
	}
}

// Notifier is implemented by sources that can change underneath the Engine.
type Notifier interface {
	Notify(fn func(Event))
}

func verify(view tea.Model) bool {
	v, ok := view.(Verifiable)
	if !ok {
		return true
	}
	return v.Verify()
}
