package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used by lesson cards so
// sections visually align.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Hearts renders the remaining lives out of total.
func Hearts(lives, total int) string {
	full := lipgloss.NewStyle().Foreground(theme.Heart).Render(strings.Repeat("♥", max(lives, 0)))
	empty := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("♡", max(total-lives, 0)))
	return full + empty
}
