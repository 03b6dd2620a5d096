package router

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/session"
)

// Action is a navigation request applied to the session machine.
type Action int

const (
	ActionSelectNative Action = iota
	ActionSelectTarget
	ActionSelectDifficulty
	ActionSelectTopic
	ActionCompleteLesson
	ActionBack
	ActionPracticeAgain
	ActionMainMenu
	ActionReset
)

// NavigateMsg asks the router to apply Action. Only the field the action
// needs is read.
type NavigateMsg struct {
	Action     Action
	Language   language.Language
	Difficulty lessongen.Difficulty
	Topic      lessongen.Topic
	Result     session.Result
}

// Navigate returns a command emitting msg.
func Navigate(msg NavigateMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Go returns a command emitting a NavigateMsg carrying only action.
func Go(action Action) tea.Cmd {
	return Navigate(NavigateMsg{Action: action})
}

// Factory builds the screen for the machine's current state. ctx is
// cancelled when the screen is replaced.
type Factory func(ctx context.Context, m *session.Machine) screen.Screen

// Router owns the session machine and the single mounted screen.
type Router struct {
	parent  context.Context
	machine *session.Machine
	factory Factory
	logger  *slog.Logger

	active screen.Screen
	cancel context.CancelFunc
}

// New creates a Router and mounts the screen for m's current state.
func New(ctx context.Context, m *session.Machine, factory Factory, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{parent: ctx, machine: m, factory: factory, logger: logger}
	r.mount()
	return r
}

// Init runs the mounted screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.active.Init()
}

func (r *Router) Machine() *session.Machine { return r.machine }

// Active returns the mounted screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update applies navigation, drops stale async results and forwards
// everything else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.navigate(msg)
	case screen.Stamped:
		if !r.machine.IsCurrent(msg.Stamp()) {
			r.logger.Debug("dropping stale message", "type", typeName(msg), "epoch", msg.Stamp(), "current", r.machine.Epoch())
			return nil
		}
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

func (r *Router) navigate(msg NavigateMsg) tea.Cmd {
	m := r.machine
	before := m.Epoch()
	from := m.State()

	switch msg.Action {
	case ActionSelectNative:
		m.SelectNative(msg.Language)
	case ActionSelectTarget:
		m.SelectTarget(msg.Language)
	case ActionSelectDifficulty:
		m.SelectDifficulty(msg.Difficulty)
	case ActionSelectTopic:
		m.SelectTopic(msg.Topic)
	case ActionCompleteLesson:
		m.CompleteLesson(msg.Result)
	case ActionBack:
		m.Back()
	case ActionPracticeAgain:
		m.PracticeAgain()
	case ActionMainMenu:
		m.MainMenu()
	case ActionReset:
		m.Reset()
	}

	if m.Epoch() == before {
		return nil
	}
	r.logger.Debug("navigate", "from", from.String(), "to", m.State().String(), "epoch", m.Epoch())
	r.mount()
	return r.active.Init()
}

// mount cancels the current screen's context and builds the next one.
func (r *Router) mount() {
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(r.parent)
	r.cancel = cancel
	r.active = r.factory(ctx, r.machine)
}

// Close cancels the mounted screen's context.
func (r *Router) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
