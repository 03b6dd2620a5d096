// Package lesson implements the lesson screen: it fetches a lesson for the
// selected topic, walks the learner through its questions and reports the
// result to the router.
package lesson

import (
	"context"
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/speech"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
)

// Deps are the collaborators shared by every lesson screen.
type Deps struct {
	Provider lessongen.Provider
	Repo     store.EventRepo // optional
	Speaker  speech.Speaker
	Mic      *speech.Mic
	Lives    int  // starting hearts; 0 means session.MaxLives
	Images   bool // fetch illustrations for image-choice questions
	Logger   *slog.Logger
}

type illustration struct {
	loading bool
	picture components.Picture
	err     error
}

// Screen is the lesson screen.
type Screen struct {
	ctx   context.Context
	deps  Deps
	epoch uint64
	req   lessongen.LessonRequest
	runID string

	spinner spinner.Model
	loading bool
	err     error
	errMenu components.Menu

	progress    *session.Progress
	options     components.OptionList
	bank        components.WordBank
	images      map[int]*illustration
	notice      string
	listening   bool
	capture     int
	confirmQuit bool
	finished    bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscCapturer = (*Screen)(nil)

// New creates the lesson screen for the machine's selections. ctx bounds
// every fetch and capture and is cancelled when the screen is replaced.
func New(ctx context.Context, deps Deps, m *session.Machine) *Screen {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Speaker == nil {
		deps.Speaker = speech.Unavailable{}
	}
	if deps.Mic == nil {
		deps.Mic = speech.NewMic(nil)
	}
	if deps.Lives <= 0 {
		deps.Lives = session.MaxLives
	}

	s := &Screen{
		ctx:     ctx,
		deps:    deps,
		epoch:   m.Epoch(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: true,
		images:  make(map[int]*illustration),
	}
	s.req.Difficulty = m.Difficulty()
	if l := m.Native(); l != nil {
		s.req.Native = *l
	}
	if l := m.Target(); l != nil {
		s.req.Target = *l
	}
	if t := m.Topic(); t != nil {
		s.req.Topic = *t
	}
	s.errMenu = components.NewMenu([]components.MenuItem{
		{Label: "Try again", Action: func() tea.Cmd { return func() tea.Msg { return retryMsg{} } }},
		{Label: "Go back", Action: func() tea.Cmd { return router.Go(router.ActionBack) }},
	})
	return s
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.fetchLesson())
}

func (s *Screen) Title() string {
	if s.req.Topic.Title == "" {
		return "Lesson"
	}
	return s.req.Topic.Title
}

// CapturesEsc is true while a lesson is in progress: Esc asks before
// abandoning it.
func (s *Screen) CapturesEsc() bool {
	return s.progress != nil && !s.finished
}

func (s *Screen) stamp() screen.Epoch { return screen.Epoch(s.epoch) }

func (s *Screen) fetchLesson() tea.Cmd {
	ctx, provider, req, epoch := s.ctx, s.deps.Provider, s.req, s.stamp()
	return func() tea.Msg {
		lesson, err := provider.FetchLesson(ctx, req)
		return lessonLoadedMsg{Epoch: epoch, Lesson: lesson, Err: err}
	}
}

func (s *Screen) fetchImage(index int, prompt string) tea.Cmd {
	ctx, provider, epoch := s.ctx, s.deps.Provider, s.stamp()
	return func() tea.Msg {
		img, err := provider.FetchImage(ctx, prompt)
		return imageLoadedMsg{Epoch: epoch, Index: index, Image: img, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading && !s.imagesLoading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case lessonLoadedMsg:
		return s.handleLessonLoaded(msg)

	case imageLoadedMsg:
		return s.handleImageLoaded(msg)

	case spokenMsg:
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			s.notice = speechNotice(msg.Err)
		}
		return s, nil

	case heardMsg:
		return s.handleHeard(msg)

	case retryMsg:
		s.loading, s.err = true, nil
		s.errMenu.Selected = 0
		return s, tea.Batch(s.spinner.Tick, s.fetchLesson())

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleLessonLoaded(msg lessonLoadedMsg) (screen.Screen, tea.Cmd) {
	if errors.Is(msg.Err, context.Canceled) && s.ctx.Err() != nil {
		return s, nil
	}
	s.loading = false
	if msg.Err == nil && (msg.Lesson == nil || msg.Lesson.Len() == 0) {
		msg.Err = &lessongen.GenerationError{Stage: "lesson", Err: errors.New("empty lesson")}
	}
	if msg.Err != nil {
		s.deps.Logger.Warn("lesson failed", "topic", s.req.Topic.Title, "target", s.req.Target.Name, "error", msg.Err)
		s.err = msg.Err
		return s, nil
	}

	s.progress = session.NewProgressWithLives(msg.Lesson, s.deps.Lives)
	s.runID = uuid.New().String()
	s.deps.Logger.Info("lesson started", "run_id", s.runID, "topic", s.req.Topic.Title,
		"target", s.req.Target.Name, "questions", msg.Lesson.Len())
	s.prepareQuestion()

	if !s.deps.Images {
		return s, nil
	}
	var cmds []tea.Cmd
	for i, q := range msg.Lesson.Questions {
		if ic, ok := q.(*lessongen.ImageChoice); ok {
			s.images[i] = &illustration{loading: true}
			cmds = append(cmds, s.fetchImage(i, ic.ImagePrompt))
		}
	}
	if len(cmds) > 0 {
		cmds = append(cmds, s.spinner.Tick)
	}
	return s, tea.Batch(cmds...)
}

func (s *Screen) handleImageLoaded(msg imageLoadedMsg) (screen.Screen, tea.Cmd) {
	ill, ok := s.images[msg.Index]
	if !ok {
		return s, nil
	}
	ill.loading = false
	if msg.Err != nil {
		if !errors.Is(msg.Err, context.Canceled) {
			s.deps.Logger.Warn("image failed", "index", msg.Index, "error", msg.Err)
		}
		ill.err = msg.Err
		return s, nil
	}
	pic, err := components.DecodePicture(msg.Image.Data)
	if err != nil {
		s.deps.Logger.Warn("image undecodable", "index", msg.Index, "mime", msg.Image.MIMEType, "error", err)
		ill.err = err
		return s, nil
	}
	ill.picture = pic
	return s, nil
}

func (s *Screen) imagesLoading() bool {
	for _, ill := range s.images {
		if ill.loading {
			return true
		}
	}
	return false
}

// prepareQuestion resets the answer widgets for the current question.
func (s *Screen) prepareQuestion() {
	s.notice = ""
	s.stopListening()
	switch q := s.progress.Current().(type) {
	case *lessongen.ImageChoice:
		s.options = components.NewOptionList(q.Options)
	case *lessongen.Sentence:
		s.bank = components.NewWordBank(q.WordBank)
	}
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch {
	case s.loading || s.finished:
		return s, nil
	case s.err != nil:
		var cmd tea.Cmd
		s.errMenu, cmd = s.errMenu.Update(msg)
		return s, cmd
	case s.confirmQuit:
		switch key {
		case "y", "enter":
			s.stopListening()
			s.deps.Speaker.Stop()
			return s, router.Go(router.ActionBack)
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "s":
		return s, s.speak()
	}

	if s.progress.Status() != session.StatusUnanswered {
		if key == "enter" {
			return s.continueLesson()
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s, s.check()
	case "m":
		return s, s.toggleMic()
	}

	switch s.progress.Current().(type) {
	case *lessongen.ImageChoice:
		var picked bool
		s.options, picked = s.options.Update(msg)
		if picked {
			s.progress.Select(session.ChoiceAnswer(s.options.Value()))
		}
	case *lessongen.Sentence:
		var changed bool
		s.bank, changed = s.bank.Update(msg)
		if changed {
			s.progress.Select(session.WordsAnswer(s.bank.Answer()))
		}
	}
	return s, nil
}

// check evaluates the selected answer and locks the widgets.
func (s *Screen) check() tea.Cmd {
	q := s.progress.Current()
	answer := s.progress.Selected()
	status, ok := s.progress.Check()
	if !ok {
		return nil
	}
	s.stopListening()
	s.notice = ""
	s.options.Locked = true
	s.bank.Locked = true
	if ic, ok := q.(*lessongen.ImageChoice); ok {
		s.options.Correct = ic.Correct
	}
	return s.recordAnswer(s.progress.Index(), q, answer, status == session.StatusCorrect)
}

func (s *Screen) continueLesson() (screen.Screen, tea.Cmd) {
	result, done := s.progress.Continue()
	if !done {
		s.prepareQuestion()
		return s, nil
	}
	s.finished = true
	s.stopListening()
	s.deps.Logger.Info("lesson finished", "run_id", s.runID, "score", result.Score, "total", result.Total,
		"lives", s.progress.Lives())
	return s, tea.Sequence(
		s.recordLesson(result),
		router.Navigate(router.NavigateMsg{Action: router.ActionCompleteLesson, Result: result}),
	)
}

// recordAnswer persists one checked answer. Persistence failures are
// logged and never interrupt the lesson.
func (s *Screen) recordAnswer(index int, q lessongen.Question, a session.Answer, correct bool) tea.Cmd {
	repo := s.deps.Repo
	if repo == nil {
		return nil
	}
	data := store.AnswerEventData{
		RunID:         s.runID,
		QuestionIndex: index,
		Kind:          string(q.Kind()),
		Given:         a.Text(),
		Correct:       correct,
	}
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		data.Prompt, data.Expected = q.ImagePrompt, q.Correct
	case *lessongen.Sentence:
		data.Prompt, data.Expected = q.Phrase, q.Solution()
	}
	ctx, logger := context.WithoutCancel(s.ctx), s.deps.Logger
	return func() tea.Msg {
		if err := repo.AppendAnswer(ctx, data); err != nil {
			logger.Warn("failed to save answer", "run_id", data.RunID, "error", err)
		}
		return nil
	}
}

func (s *Screen) recordLesson(r session.Result) tea.Cmd {
	repo := s.deps.Repo
	if repo == nil {
		return nil
	}
	data := store.LessonEventData{
		RunID:          s.runID,
		NativeLanguage: s.req.Native.Name,
		TargetLanguage: s.req.Target.Name,
		Difficulty:     string(s.req.Difficulty),
		Topic:          s.req.Topic.Title,
		Level:          s.req.Topic.Level,
		Score:          r.Score,
		Total:          r.Total,
		Answered:       s.progress.Answered(),
		LivesLeft:      s.progress.Lives(),
		EndedEarly:     s.progress.Answered() < r.Total,
	}
	ctx, logger := context.WithoutCancel(s.ctx), s.deps.Logger
	return func() tea.Msg {
		if err := repo.AppendLesson(ctx, data); err != nil {
			logger.Warn("failed to save lesson", "run_id", data.RunID, "error", err)
		}
		return nil
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.loading || s.finished:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.err != nil:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case s.progress.Status() != session.StatusUnanswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "S", Description: "Listen"},
		}
	}

	hints := []layout.KeyHint{}
	if _, ok := s.progress.Current().(*lessongen.Sentence); ok {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Move"},
			layout.KeyHint{Key: "Space", Description: "Place"},
			layout.KeyHint{Key: "⌫", Description: "Undo"},
			layout.KeyHint{Key: "M", Description: "Speak answer"},
		)
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Move"},
			layout.KeyHint{Key: "Space/1-4", Description: "Pick"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "S", Description: "Listen"},
		layout.KeyHint{Key: "Enter", Description: "Check"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
}
