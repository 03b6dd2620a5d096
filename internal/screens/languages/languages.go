// Package languages implements the native and target language pickers.
package languages

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// Screen is a language menu. The same screen serves both pickers; only
// the catalog, the wording and the emitted action differ.
type Screen struct {
	title    string
	question string
	menu     components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// NewNative asks which language the learner speaks.
func NewNative() *Screen {
	return &Screen{
		title:    "Welcome",
		question: "Which language do you speak?",
		menu:     components.NewMenu(items(language.Natives(), router.ActionSelectNative, nil)),
	}
}

// NewTarget asks which language to learn. The native language is listed
// but cannot be picked.
func NewTarget(native language.Language) *Screen {
	same := func(l language.Language) bool { return l.Name == native.Name }
	return &Screen{
		title:    "Choose a language",
		question: fmt.Sprintf("You speak %s. What would you like to learn?", native.Name),
		menu:     components.NewMenu(items(language.Targets(), router.ActionSelectTarget, same)),
	}
}

func items(list []language.Language, action router.Action, disabled func(language.Language) bool) []components.MenuItem {
	out := make([]components.MenuItem, 0, len(list))
	for _, l := range list {
		item := components.MenuItem{
			Label: l.String(),
			Action: func() tea.Cmd {
				return router.Navigate(router.NavigateMsg{Action: action, Language: l})
			},
		}
		if disabled != nil && disabled(l) {
			item.Disabled = true
			item.Detail = "you already speak it"
		}
		out = append(out, item)
	}
	return out
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return s.title }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := theme.Title.Width(cw).Render(s.question)
	menu := lipgloss.NewStyle().Width(cw).Render(s.menu.View())
	return components.Centered(heading+"\n\n"+components.Card(menu, cw), width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+R", Description: "Start over"},
	}
}
