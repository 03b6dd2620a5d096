package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/ui/theme"
)

// Loading renders a spinner frame and a caption in the middle of the
// area.
func Loading(spin, caption string, width, height int) string {
	line := lipgloss.NewStyle().Foreground(theme.Primary).Render(spin) + " " +
		theme.Subtitle.Render(caption)
	return Centered(line, width, height)
}

// ErrorPanel renders a failure card followed by the recovery menu.
func ErrorPanel(title, detail string, menu Menu, width, height int) string {
	cw := ContentWidth(width)
	body := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(title)
	if detail != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-4).Render(detail)
	}
	return Centered(Card(body, cw)+"\n\n"+menu.View(), width, height)
}
