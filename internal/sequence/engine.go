package sequence

import (
	"log"

	"seqwizard/internal/assert"

	tea "github.com/charmbracelet/bubbletea"
)

// State is where the engine is in the lifetime of a sequence.
type State int

const (
	NotStarted State = iota
	AtStep
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case AtStep:
		return "at step"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Engine is the command layer. It is the only thing that moves a sequence and
// must only be used from the goroutine running the UI loop.
type Engine struct {
	host     Host
	source   Source
	state    State
	commands commandSet
	onChange func()

	// transitioning is set for the duration of a transition. Source events
	// arriving meanwhile are queued in pending and applied afterwards.
	transitioning bool
	pending       []Event
}

// New creates an engine over host and source and shows the first view.
func New(host Host, source Source) *Engine {
	assert.NotNil(host, "sequence: host must not be nil")
	assert.NotNil(source, "sequence: source must not be nil")

	e := &Engine{
		host:     host,
		source:   source,
		commands: newCommandSet(),
	}

	if n, ok := source.(Notifier); ok {
		n.Notify(e.handleEvent)
	}

	e.Start()
	return e
}

// Start (re)shows the source's first view. It also revives a finished
// sequence.
func (e *Engine) Start() {
	e.transition("start", func() bool {
		first := e.source.First()
		assert.NotNil(first, "sequence: source returned no first view")

		e.host.SetContent(first)
		e.state = AtStep
		return true
	})
}

// GoNext moves to the next view unless there is none or the current view
// refuses verification. Reports whether the sequence moved.
func (e *Engine) GoNext() bool {
	return e.transition("next", func() bool {
		current := e.Current()
		if e.state != AtStep || !e.source.HasNext(current) {
			return false
		}

		if !verify(current) {
			log.Println("sequence: next refused by verification")
			return false
		}

		next := e.source.Next(current)
		if next == nil {
			log.Println("sequence: source produced no next view")
			return false
		}

		e.host.SetContent(next)
		return true
	})
}

// GoPrevious moves back one view. Backward moves are never verified.
func (e *Engine) GoPrevious() bool {
	return e.transition("previous", func() bool {
		current := e.Current()
		if e.state != AtStep || !e.source.HasPrevious(current) {
			return false
		}

		previous := e.source.Previous(current)
		if previous == nil {
			log.Println("sequence: source produced no previous view")
			return false
		}

		e.host.SetContent(previous)
		return true
	})
}

// GoFinish ends the sequence if the last view accepts verification, closing
// the host with ResultOK when it is a dialog.
func (e *Engine) GoFinish() bool {
	return e.transition("finish", func() bool {
		current := e.Current()
		if e.state != AtStep || e.source.HasNext(current) {
			return false
		}

		if !verify(current) {
			log.Println("sequence: finish refused by verification")
			return false
		}

		e.state = Finished
		if d, ok := e.host.(DialogHost); ok {
			d.Close(ResultOK)
		}
		return true
	})
}

// Invoke runs the command with the given id if it is enabled.
func (e *Engine) Invoke(id CommandID) bool {
	if !e.commands.enabled(id) {
		log.Printf("sequence: %s is disabled", id)
		return false
	}

	switch id {
	case Previous:
		return e.GoPrevious()
	case Next:
		return e.GoNext()
	case Finish:
		return e.GoFinish()
	}
	return false
}

// Current returns the view in the host's content slot.
func (e *Engine) Current() tea.Model {
	return e.host.Content()
}

func (e *Engine) State() State {
	return e.state
}

// Commands returns the three commands in Previous, Next, Finish order.
func (e *Engine) Commands() []Command {
	return append([]Command(nil), e.commands[:]...)
}

func (e *Engine) Enabled(id CommandID) bool {
	return e.commands.enabled(id)
}

// Default returns the command the host should activate on its primary
// affordance: Next while more steps remain, Finish afterwards.
func (e *Engine) Default() CommandID {
	if e.commands.enabled(Next) {
		return Next
	}
	return Finish
}

// OnChange registers fn to run after every transition or command
// recomputation. It replaces any earlier registration.
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

func (e *Engine) transition(name string, step func() bool) bool {
	if e.transitioning {
		log.Printf("sequence: %s ignored, transition in progress", name)
		return false
	}

	e.transitioning = true
	moved := step()
	e.recompute()
	e.transitioning = false

	log.Printf(
		"sequence: %s moved=%v state=%s prev=%v next=%v finish=%v",
		name,
		moved,
		e.state,
		e.commands.enabled(Previous),
		e.commands.enabled(Next),
		e.commands.enabled(Finish),
	)

	e.drain()

	if e.onChange != nil {
		e.onChange()
	}
	return moved
}

func (e *Engine) recompute() {
	if e.state != AtStep {
		e.commands.set(Previous, false)
		e.commands.set(Next, false)
		e.commands.set(Finish, false)
		return
	}

	current := e.Current()
	hasNext := e.source.HasNext(current)

	e.commands.set(Previous, e.source.HasPrevious(current))
	e.commands.set(Next, hasNext)
	e.commands.set(Finish, !hasNext)
}

func (e *Engine) handleEvent(ev Event) {
	if e.transitioning {
		log.Printf("sequence: deferring %s event", ev)
		e.pending = append(e.pending, ev)
		return
	}
	e.apply(ev)
}

func (e *Engine) drain() {
	for len(e.pending) > 0 {
		ev := e.pending[0]
		e.pending = e.pending[1:]
		e.apply(ev)
	}
}

func (e *Engine) apply(ev Event) {
	switch ev {
	case EventMutated:
		e.transition("refresh", func() bool { return false })
	case EventRebound:
		e.Start()
	default:
		assert.Failf("sequence: unknown event %d", ev)
	}
}
