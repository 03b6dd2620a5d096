// Package difficulty implements the level picker.
package difficulty

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// Screen lets the learner pick a Difficulty for the target language.
type Screen struct {
	target language.Language
	menu   components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(target language.Language) *Screen {
	var items []components.MenuItem
	for _, d := range lessongen.Difficulties() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%-13s", d),
			Detail: fmt.Sprintf("%s · %d topics", d.Description(), d.TopicCount()),
			Action: func() tea.Cmd {
				return router.Navigate(router.NavigateMsg{Action: router.ActionSelectDifficulty, Difficulty: d})
			},
		})
	}
	return &Screen{target: target, menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Difficulty" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := theme.Title.Width(cw).Render("How well do you know " + s.target.String() + "?")
	menu := lipgloss.NewStyle().Width(cw).Render(s.menu.View())
	return components.Centered(heading+"\n\n"+components.Card(menu, cw), width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
