// Package plan implements the lesson-plan screen: it fetches the topic
// list for the chosen language and difficulty and lets the learner pick
// one.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// planLoadedMsg carries the result of FetchLessonPlan.
type planLoadedMsg struct {
	screen.Epoch
	Topics []lessongen.Topic
	Err    error
}

// retryMsg re-issues the fetch after a failure.
type retryMsg struct{}

// Screen shows the lesson plan.
type Screen struct {
	ctx        context.Context
	provider   lessongen.Provider
	logger     *slog.Logger
	epoch      uint64
	target     language.Language
	difficulty lessongen.Difficulty

	spinner spinner.Model
	loading bool
	topics  []lessongen.Topic
	menu    components.Menu
	err     error
	errMenu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen for the machine's target and difficulty. ctx
// bounds the fetch and is cancelled when the screen is replaced.
func New(ctx context.Context, provider lessongen.Provider, m *session.Machine, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Screen{
		ctx:        ctx,
		provider:   provider,
		logger:     logger,
		epoch:      m.Epoch(),
		difficulty: m.Difficulty(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading:    true,
	}
	if t := m.Target(); t != nil {
		s.target = *t
	}
	s.errMenu = components.NewMenu([]components.MenuItem{
		{Label: "Try again", Action: func() tea.Cmd { return func() tea.Msg { return retryMsg{} } }},
		{Label: "Go back", Action: func() tea.Cmd { return router.Go(router.ActionBack) }},
	})
	return s
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.fetch())
}

func (s *Screen) fetch() tea.Cmd {
	ctx, provider, epoch := s.ctx, s.provider, screen.Epoch(s.epoch)
	target, difficulty := s.target, s.difficulty
	return func() tea.Msg {
		topics, err := provider.FetchLessonPlan(ctx, target, difficulty)
		return planLoadedMsg{Epoch: epoch, Topics: topics, Err: err}
	}
}

func (s *Screen) Title() string { return "Lesson plan" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case planLoadedMsg:
		return s.handleLoaded(msg)

	case retryMsg:
		s.loading, s.err = true, nil
		s.errMenu.Selected = 0
		return s, tea.Batch(s.spinner.Tick, s.fetch())

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		switch {
		case s.loading:
		case s.err != nil:
			s.errMenu, cmd = s.errMenu.Update(msg)
		default:
			s.menu, cmd = s.menu.Update(msg)
		}
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleLoaded(msg planLoadedMsg) (screen.Screen, tea.Cmd) {
	if errors.Is(msg.Err, context.Canceled) && s.ctx.Err() != nil {
		return s, nil
	}
	s.loading = false
	if msg.Err != nil {
		s.logger.Warn("lesson plan failed", "target", s.target.Name, "difficulty", string(s.difficulty), "error", msg.Err)
		s.err = msg.Err
		return s, nil
	}

	s.topics = msg.Topics
	items := make([]components.MenuItem, 0, len(msg.Topics))
	for _, t := range msg.Topics {
		items = append(items, components.MenuItem{
			Label: topicLabel(t),
			Action: func() tea.Cmd {
				return router.Navigate(router.NavigateMsg{Action: router.ActionSelectTopic, Topic: t})
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s, nil
}

func topicLabel(t lessongen.Topic) string {
	icon := t.Icon
	if icon == "" {
		icon = "•"
	}
	return fmt.Sprintf("%s  %2d. %s", icon, t.Level, t.Title)
}

func (s *Screen) View(width, height int) string {
	if s.loading {
		return components.Loading(s.spinner.View(),
			fmt.Sprintf("Building your %s %s plan...", s.difficulty, s.target.Name), width, height)
	}
	if s.err != nil {
		return components.ErrorPanel("Could not build a lesson plan", s.err.Error(), s.errMenu, width, height)
	}

	cw := components.ContentWidth(width)
	heading := theme.Title.Width(cw).Render(fmt.Sprintf("%s · %s", s.target.String(), s.difficulty))
	sub := theme.Subtitle.Width(cw).Render("Pick a topic to start a lesson")
	menu := lipgloss.NewStyle().Width(cw).Render(s.menu.View())
	return components.Centered(heading+"\n"+sub+"\n\n"+components.Card(menu, cw), width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
