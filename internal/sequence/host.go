package sequence

import tea "github.com/charmbracelet/bubbletea"

// Host owns the single content slot the current step is shown in.
type Host interface {
	SetContent(view tea.Model)
	Content() tea.Model
}

// Result is the outcome a modal dialog host reports when it closes.
type Result int

const (
	ResultCancel Result = iota
	ResultOK
)

func (r Result) String() string {
	if r == ResultOK {
		return "ok"
	}
	return "cancel"
}

// DialogHost is a Host wrapped in a modal dialog. Finishing the sequence
// closes it with ResultOK.
type DialogHost interface {
	Host
	Close(result Result)
}

// SlotHost is a bare Host with nothing around the content slot.
type SlotHost struct {
	content tea.Model
}

func (h *SlotHost) SetContent(view tea.Model) { h.content = view }
func (h *SlotHost) Content() tea.Model        { return h.content }
