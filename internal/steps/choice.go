package steps

import (
	"fmt"
	"io"
	"log"
	"strings"

	"seqwizard/internal/constants"
	"seqwizard/internal/layout"
	"seqwizard/internal/styles"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one entry of a Choice step. Next, when set, overrides the step's
// own successor while this option is selected.
type Option struct {
	Label       string
	Description string
	Next        string
}

func (o Option) FilterValue() string { return o.Label }

// Choice lets the user pick one of a fixed set of options.
type Choice struct {
	base
	list list.Model
	next string
	err  string
}

type ChoiceOptions struct {
	ID      string
	Title   string
	Prompt  string
	Options []Option
	Next    string
}

func NewChoice(opts ChoiceOptions) *Choice {
	items := make([]list.Item, len(opts.Options))
	for i, o := range opts.Options {
		items[i] = o
	}

	l := list.New(items, optionDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.SetSize(40, listHeight(len(items)))

	return &Choice{
		base: base{
			id:     opts.ID,
			title:  opts.Title,
			prompt: opts.Prompt,
		},
		list: l,
		next: opts.Next,
	}
}

func (m *Choice) Init() tea.Cmd {
	return nil
}

func (m *Choice) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.list.SetSize(msg.Width, listHeight(len(m.list.Items())))
		return m, nil
	}

	m.err = ""
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Choice) View() string {
	return layout.Stack(m.header(), m.list.View(), renderError(m.err))
}

// Verify refuses when there is nothing to pick.
func (m *Choice) Verify() bool {
	if _, ok := m.Selected(); !ok {
		log.Printf("steps: %s refused, no option selected", m.id)
		m.err = constants.Dialog.Required
		return false
	}
	return true
}

func (m *Choice) HasNext() bool {
	return m.resolve != nil && m.nextID() != ""
}

func (m *Choice) Next() any {
	return m.follow(m.nextID())
}

// Selected returns the option under the cursor.
func (m *Choice) Selected() (Option, bool) {
	o, ok := m.list.SelectedItem().(Option)
	return o, ok
}

// Select moves the cursor to the option at index i.
func (m *Choice) Select(i int) {
	m.list.Select(i)
}

func (m *Choice) Answer() Answer {
	o, _ := m.Selected()
	return Answer{Label: m.title, Value: o.Label}
}

func (m *Choice) nextID() string {
	if o, ok := m.Selected(); ok && o.Next != "" {
		return o.Next
	}
	return m.next
}

type optionDelegate struct{}

func (d optionDelegate) Height() int                               { return 2 }
func (d optionDelegate) Spacing() int                              { return 0 }
func (d optionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	o, ok := listItem.(Option)
	if !ok {
		fmt.Fprint(w, "Invalid option")
		return
	}

	prefix := constants.Dialog.DefaultMark
	spacer := strings.Repeat(" ", lipgloss.Width(prefix))

	var title string
	if index == m.Index() {
		title = styles.TitleStyle.UnsetPadding().Render(prefix + o.Label)
	} else {
		title = styles.NormalTextStyle.Render(spacer + o.Label)
	}
	desc := styles.SubtleTextStyle.Render(spacer + o.Description)

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func listHeight(items int) int {
	d := optionDelegate{}
	if items == 0 {
		return 1
	}
	return items*d.Height() + (items-1)*d.Spacing()
}
