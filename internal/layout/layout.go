package layout

import (
	"strings"

	"seqwizard/internal/styles"

	"github.com/charmbracelet/lipgloss"
)

// View centers content in a width x height frame, cutting off lines that do
// not fit.
func View(content string, width, height int) string {
	availableWidth := width - styles.AppStyle.GetHorizontalPadding()
	availableHeight := height - styles.AppStyle.GetVerticalPadding()
	if availableHeight <= 0 {
		return ""
	}

	var finalContent string

	if lipgloss.Height(content) > availableHeight {
		lines := strings.Split(content, "\n")
		finalContent = strings.Join(lines[:availableHeight], "\n")
	} else {
		finalContent = lipgloss.PlaceVertical(
			availableHeight,
			lipgloss.Center,
			content,
		)
	}

	centeredResult := lipgloss.PlaceHorizontal(
		availableWidth,
		lipgloss.Center,
		finalContent,
	)

	return styles.AppStyle.Render(centeredResult)
}

// Stack joins the non-empty sections top to bottom with a blank line between
// each.
func Stack(sections ...string) string {
	var parts []string
	for _, s := range sections {
		if s == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
