package dialog

import (
	"fmt"
	"strings"

	"seqwizard/internal/assert"
	"seqwizard/internal/constants"
	"seqwizard/internal/sequence"
	"seqwizard/internal/styles"

	"github.com/charmbracelet/lipgloss"
)

// Orientation is the axis the command buttons are laid out along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown buttons layout %q", s)
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

func (o Orientation) valid() bool {
	return o == Horizontal || o == Vertical
}

func buttonLabel(id sequence.CommandID) string {
	switch id {
	case sequence.Previous:
		return constants.Dialog.Previous
	case sequence.Next:
		return constants.Dialog.Next
	case sequence.Finish:
		return constants.Dialog.Finish
	}
	assert.Failf("dialog: no label for command %d", id)
	return ""
}

// renderButtons draws one button per command. The default command is marked
// so it stays recognisable without colour.
func renderButtons(cmds []sequence.Command, def sequence.CommandID, o Orientation) string {
	rendered := make([]string, 0, len(cmds))
	for _, c := range cmds {
		label := buttonLabel(c.ID)

		var style lipgloss.Style
		switch {
		case !c.Enabled:
			style = styles.DisabledButtonStyle
		case c.ID == def:
			style = styles.DefaultButtonStyle
			label = constants.Dialog.DefaultMark + label
		default:
			style = styles.ButtonStyle
		}
		rendered = append(rendered, style.Render(label))
	}

	if o == Vertical {
		return lipgloss.JoinVertical(lipgloss.Right, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
