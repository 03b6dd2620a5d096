// Package results implements the end-of-lesson screen.
package results

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// Screen shows the score of the lesson just finished.
type Screen struct {
	summary    session.Summary
	topic      string
	difficulty lessongen.Difficulty
	menu       components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New builds the screen from the machine's last result.
func New(m *session.Machine) *Screen {
	var r session.Result
	if lr := m.LastResult(); lr != nil {
		r = *lr
	}
	s := &Screen{summary: session.Summarize(r), difficulty: m.Difficulty()}
	if t := m.Topic(); t != nil {
		s.topic = t.Title
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Practice again", Detail: "new questions, same topic", Action: func() tea.Cmd {
			return router.Go(router.ActionPracticeAgain)
		}},
		{Label: "Main menu", Action: func() tea.Cmd {
			return router.Go(router.ActionMainMenu)
		}},
	})
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Results" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	headline := theme.Title.Width(cw).Render(s.summary.Tier.Message())
	if s.summary.Tier == session.TierKeepPracticing {
		headline = theme.Title.Foreground(theme.Accent).Width(cw).Render(s.summary.Tier.Message())
	}

	percent := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Bold(true).
		Foreground(theme.Secondary).Render(fmt.Sprintf("%d%%", s.summary.Percentage))
	line := fmt.Sprintf("%d of %d correct", s.summary.Score, s.summary.Total)
	if s.topic != "" {
		line = fmt.Sprintf("%s (%s) · %s", s.topic, s.difficulty, line)
	}
	score := theme.Subtitle.Width(cw).Render(line)

	bar := lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.NewProgressBar("", float64(s.summary.Percentage)/100, false, cw/2).View())
	menu := components.Card(s.menu.View(), cw)

	return components.Centered(lipgloss.JoinVertical(lipgloss.Left,
		headline, "", percent, bar, score, "", menu), width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Main menu"},
	}
}
