package steps

import (
	"fmt"
	"log"
	"strings"

	"seqwizard/internal/constants"
	"seqwizard/internal/layout"
	"seqwizard/internal/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skip2/go-qrcode"
)

// Summary shows the answers collected so far, as text and as a QR code that
// can be scanned off the terminal.
type Summary struct {
	base
	answers func() []Answer
	qr      bool
}

type SummaryOptions struct {
	ID      string
	Title   string
	Prompt  string
	Answers func() []Answer
	QRCode  bool
}

func NewSummary(opts SummaryOptions) *Summary {
	title := opts.Title
	if title == "" {
		title = constants.Dialog.SummaryTitle
	}

	return &Summary{
		base: base{
			id:     opts.ID,
			title:  title,
			prompt: opts.Prompt,
		},
		answers: opts.Answers,
		qr:      opts.QRCode,
	}
}

func (m *Summary) Init() tea.Cmd { return nil }

func (m *Summary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

func (m *Summary) View() string {
	text := m.Text()
	if text == "" {
		return layout.Stack(m.header(), styles.SubtleTextStyle.Render(constants.Dialog.NoAnswers))
	}

	var lines []string
	for _, a := range m.collect() {
		lines = append(lines, fmt.Sprintf(
			"%s %s",
			styles.SubtleTextStyle.Render(a.Label+":"),
			styles.SuccessStyle.Render(a.Value),
		))
	}

	return layout.Stack(m.header(), strings.Join(lines, "\n"), m.code(text))
}

// Text renders the non-empty answers as "label: value" lines.
func (m *Summary) Text() string {
	var lines []string
	for _, a := range m.collect() {
		lines = append(lines, fmt.Sprintf("%s: %s", a.Label, a.Value))
	}
	return strings.Join(lines, "\n")
}

func (m *Summary) collect() []Answer {
	if m.answers == nil {
		return nil
	}

	var out []Answer
	for _, a := range m.answers() {
		if a.Value != "" {
			out = append(out, a)
		}
	}
	return out
}

func (m *Summary) code(text string) string {
	if !m.qr {
		return ""
	}

	q, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		log.Printf("steps: summary qr code failed: %v", err)
		return renderError(err.Error())
	}
	q.DisableBorder = true
	return q.ToSmallString(false)
}

// Notice is a step that only displays a message.
type Notice struct {
	base
}

func NewNotice(title, message string) *Notice {
	return &Notice{base: base{title: title, prompt: message}}
}

func (m *Notice) Init() tea.Cmd                       { return nil }
func (m *Notice) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m *Notice) View() string                        { return m.header() }
