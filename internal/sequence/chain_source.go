package sequence

import (
	"log"

	"seqwizard/internal/assert"
	"seqwizard/internal/navigator"

	tea "github.com/charmbracelet/bubbletea"
)

// ChainSource is a Source where each view names its own successor through
// the Sequenceable capability. Views already passed are kept on a history
// stack so the sequence can be walked back.
type ChainSource struct {
	first   tea.Model
	history navigator.History[tea.Model]
}

func NewChainSource(first tea.Model) *ChainSource {
	assert.NotNil(first, "sequence: chain source needs a first view")

	return &ChainSource{
		first:   first,
		history: navigator.New[tea.Model](),
	}
}

func (c *ChainSource) First() tea.Model {
	c.history.Reset()
	return c.first
}

func (c *ChainSource) HasNext(current tea.Model) bool {
	s, ok := current.(Sequenceable)
	return ok && s.HasNext()
}

// Next asks current for its successor. The successor is never cached: going
// back and then forward again asks the view once more.
func (c *ChainSource) Next(current tea.Model) tea.Model {
	s, ok := current.(Sequenceable)
	if !ok {
		return nil
	}

	next, ok := s.Next().(tea.Model)
	if !ok || next == nil {
		log.Printf("sequence: %T named a successor that is not a view", current)
		return nil
	}

	c.history.Push(current)
	return next
}

func (c *ChainSource) HasPrevious(tea.Model) bool {
	return c.history.Len() > 0
}

func (c *ChainSource) Previous(tea.Model) tea.Model {
	previous, ok := c.history.Pop()
	if !ok {
		return nil
	}
	return previous
}

// History returns the views passed so far, oldest first.
func (c *ChainSource) History() []tea.Model {
	return c.history.Entries()
}

// Path is the history followed by current.
func (c *ChainSource) Path(current tea.Model) []tea.Model {
	path := c.history.Entries()
	if current != nil {
		path = append(path, current)
	}
	return path
}
