// Package app wires the router, the session machine and the screens into
// the root Bubble Tea model.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/screens/difficulty"
	"github.com/abhisek/lingo/internal/screens/languages"
	"github.com/abhisek/lingo/internal/screens/lesson"
	"github.com/abhisek/lingo/internal/screens/plan"
	"github.com/abhisek/lingo/internal/screens/results"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/speech"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/layout"
)

// Options holds the collaborators the TUI runs with.
type Options struct {
	Provider lessongen.Provider
	Repo     store.EventRepo // optional
	Speaker  speech.Speaker  // optional
	Listener speech.Listener // optional
	Lives    int
	Images   bool
	Logger   *slog.Logger

	// Input and Output override the terminal, for tests.
	Input  io.Reader
	Output io.Writer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model with the native-language screen mounted.
func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	m := session.NewMachine()
	return AppModel{
		router: router.New(ctx, m, newFactory(opts), opts.Logger),
	}
}

// newFactory builds the screen for each state of the machine.
func newFactory(opts Options) router.Factory {
	deps := lesson.Deps{
		Provider: opts.Provider,
		Repo:     opts.Repo,
		Speaker:  opts.Speaker,
		Mic:      speech.NewMic(opts.Listener),
		Lives:    opts.Lives,
		Images:   opts.Images,
		Logger:   opts.Logger,
	}

	return func(ctx context.Context, m *session.Machine) screen.Screen {
		switch m.State() {
		case session.StateLanguageSelect:
			var native language.Language
			if l := m.Native(); l != nil {
				native = *l
			}
			return languages.NewTarget(native)
		case session.StateDifficultySelect:
			return difficulty.New(*m.Target())
		case session.StateLessonPlan:
			return plan.New(ctx, opts.Provider, m, opts.Logger)
		case session.StateLesson:
			return lesson.New(ctx, deps, m)
		case session.StateResults:
			return results.New(m)
		default:
			return languages.NewNative()
		}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "ctrl+r":
			return m, router.Go(router.ActionReset)
		case "esc":
			if c, ok := m.router.Active().(screen.EscCapturer); ok && c.CapturesEsc() {
				break
			}
			return m, router.Go(router.ActionBack)
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame: header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, headerContext(m.router.Machine()), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// headerContext summarizes the learner's selections, e.g.
// "🇺🇸 → 🇫🇷 French · Beginner".
func headerContext(m *session.Machine) string {
	var parts []string
	if n := m.Native(); n != nil {
		parts = append(parts, n.Flag)
	}
	if t := m.Target(); t != nil {
		parts = append(parts, "→", t.String())
	}
	s := strings.Join(parts, " ")
	if d := m.Difficulty(); d.Valid() {
		s += " · " + string(d)
	}
	return s
}

// Run starts the Bubble Tea program and blocks until the learner quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Provider == nil {
		return errors.New("app: no lesson provider")
	}
	model := newAppModel(ctx, opts)
	defer model.router.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	_, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
