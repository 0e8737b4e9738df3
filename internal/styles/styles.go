package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Main application frame
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	// Dialog box around the step content
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // Magenta
			Bold(true).
			Padding(0, 1)

	StepTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	NormalTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	SubtleTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)  // Green
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	DefaultButtonStyle = ButtonStyle.
				Foreground(lipgloss.Color("205")).
				BorderForeground(lipgloss.Color("205")).
				Bold(true)
	DisabledButtonStyle = ButtonStyle.
				Foreground(lipgloss.Color("238")).
				BorderForeground(lipgloss.Color("238"))

	// Text inputs
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205"))
)
