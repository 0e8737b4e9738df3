// Package dialog hosts a step sequence in a modal terminal dialog: one
// content slot, a row of Previous/Next/Finish buttons and key bindings that
// drive the sequence engine.
package dialog

import (
	"log"

	"seqwizard/internal/assert"
	"seqwizard/internal/constants"
	"seqwizard/internal/layout"
	"seqwizard/internal/sequence"
	"seqwizard/internal/styles"
	"seqwizard/internal/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	title   string
	content tea.Model
	engine  *sequence.Engine
	keys    types.KeyMap
	help    help.Model
	buttons Orientation
	width   int
	height  int
	result  sequence.Result
	closed  bool

	// shown is the view last initialised in the content slot. Commands from
	// initialising a newly shown view wait in pending until the next Update.
	shown   tea.Model
	pending []tea.Cmd
}

type Option func(*Model)

// WithButtons lays the command buttons out along o. An unknown orientation is
// a programming error.
func WithButtons(o Orientation) Option {
	assert.True(o.valid(), "dialog: unknown buttons orientation "+o.String())
	return func(m *Model) {
		m.buttons = o
	}
}

func New(
	title string,
	source sequence.Source,
	keys types.KeyMap,
	opts ...Option,
) *Model {
	log.Printf("dialog: New received: %q", title)

	m := &Model{
		title:  title,
		keys:   keys,
		help:   help.New(),
		result: sequence.ResultCancel,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.engine = sequence.New(m, source)
	m.shown = m.content
	m.engine.OnChange(m.contentChanged)
	return m
}

// SetContent implements sequence.Host.
func (m *Model) SetContent(view tea.Model) {
	m.content = view
}

// Content implements sequence.Host.
func (m *Model) Content() tea.Model {
	return m.content
}

// Close implements sequence.DialogHost.
func (m *Model) Close(result sequence.Result) {
	log.Printf("dialog: closing with %s", result)
	m.result = result
	m.closed = true
}

// Result is ResultOK once the sequence finished and ResultCancel otherwise.
func (m *Model) Result() sequence.Result {
	return m.result
}

func (m *Model) Closed() bool {
	return m.closed
}

func (m *Model) Engine() *sequence.Engine {
	return m.engine
}

func (m *Model) Init() tea.Cmd {
	log.Printf("dialog: Init received")
	return m.content.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_, cmd = m.handleWindowSizeMsg(msg)

	case tea.KeyMsg:
		_, cmd = m.handleKeyMsg(msg)

	default:
		_, cmd = m.delegateToContent(msg)
	}

	if len(m.pending) == 0 {
		return m, cmd
	}
	cmds := append(m.pending, cmd)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	log.Printf("dialog: WindowSizeMsg received: %+v", msg)

	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = m.contentWidth()

	return m.delegateToContent(m.contentSize())
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.HardQuit), key.Matches(msg, m.keys.Cancel):
		m.Close(sequence.ResultCancel)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.invoke(sequence.Next)

	case key.Matches(msg, m.keys.Previous):
		return m.invoke(sequence.Previous)

	case key.Matches(msg, m.keys.Confirm):
		return m.invoke(m.engine.Default())
	}

	return m.delegateToContent(msg)
}

func (m *Model) invoke(id sequence.CommandID) (tea.Model, tea.Cmd) {
	m.engine.Invoke(id)

	if m.closed {
		return m, tea.Quit
	}
	return m, nil
}

// contentChanged runs after every engine transition, including the ones a
// source starts on its own. A view new to the content slot is initialised and
// sized right away.
func (m *Model) contentChanged() {
	if m.content == m.shown {
		return
	}
	log.Printf("dialog: content changed to %T", m.content)
	m.shown = m.content

	m.pending = append(m.pending, m.content.Init())
	if m.width > 0 {
		_, cmd := m.delegateToContent(m.contentSize())
		m.pending = append(m.pending, cmd)
	}
	m.shown = m.content
}

func (m *Model) delegateToContent(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.content.Update(msg)
	m.content = updated
	return m, cmd
}

func (m *Model) contentWidth() int {
	return m.width -
		styles.AppStyle.GetHorizontalPadding() -
		styles.DialogStyle.GetHorizontalFrameSize()
}

func (m *Model) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width: m.contentWidth(),
		Height: m.height -
			styles.AppStyle.GetVerticalPadding() -
			styles.DialogStyle.GetVerticalFrameSize(),
	}
}

func (m *Model) View() string {
	body := layout.Stack(
		styles.TitleStyle.Render(m.title),
		m.content.View(),
		renderButtons(m.engine.Commands(), m.engine.Default(), m.buttons),
		m.help.View(m.keys),
	)
	framed := styles.DialogStyle.Render(body)

	if m.width == 0 || m.height == 0 {
		return framed
	}
	return layout.View(framed, m.width, m.height)
}

// Outcome is the line printed after the program exits.
func (m *Model) Outcome() string {
	if m.result == sequence.ResultOK {
		return constants.Dialog.Completed
	}
	return constants.Dialog.Cancelled
}
