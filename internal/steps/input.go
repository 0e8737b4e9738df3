package steps

import (
	"log"
	"strings"

	"seqwizard/internal/constants"
	"seqwizard/internal/layout"
	"seqwizard/internal/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input is a single line text step. When required, it refuses to be left
// forward while empty.
type Input struct {
	base
	input    textinput.Model
	required bool
	next     string
	err      string
}

type InputOptions struct {
	ID          string
	Title       string
	Prompt      string
	Placeholder string
	Required    bool
	Next        string
}

func NewInput(opts InputOptions) *Input {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return &Input{
		base: base{
			id:     opts.ID,
			title:  opts.Title,
			prompt: opts.Prompt,
		},
		input:    ti,
		required: opts.Required,
		next:     opts.Next,
	}
}

func (m *Input) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Input) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-4)
		return m, nil

	case tea.KeyMsg:
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Input) View() string {
	return layout.Stack(
		m.header(),
		styles.FocusedInputStyle.Render(m.input.View()),
		renderError(m.err),
	)
}

// Verify refuses an empty value on a required step and shows why.
func (m *Input) Verify() bool {
	if m.required && m.Value() == "" {
		log.Printf("steps: %s refused, value required", m.id)
		m.err = constants.Dialog.Required
		return false
	}
	m.err = ""
	return true
}

func (m *Input) HasNext() bool {
	return m.resolve != nil && m.next != ""
}

func (m *Input) Next() any {
	return m.follow(m.next)
}

func (m *Input) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// SetValue replaces the current text.
func (m *Input) SetValue(v string) {
	m.input.SetValue(v)
}

func (m *Input) Answer() Answer {
	return Answer{Label: m.title, Value: m.Value()}
}
