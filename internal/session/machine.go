// Package session holds the learner's navigation state machine, lesson
// progression and answer evaluation. It has no I/O and never blocks.
package session

import (
	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
)

// State is a screen of the learning flow.
type State int

const (
	StateNativeLanguageSelect State = iota
	StateLanguageSelect
	StateDifficultySelect
	StateLessonPlan
	StateLesson
	StateResults
)

func (s State) String() string {
	switch s {
	case StateNativeLanguageSelect:
		return "native-language-select"
	case StateLanguageSelect:
		return "language-select"
	case StateDifficultySelect:
		return "difficulty-select"
	case StateLessonPlan:
		return "lesson-plan"
	case StateLesson:
		return "lesson"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished lesson. Total is the full lesson
// length even when the lesson ended early.
type Result struct {
	Score int
	Total int
}

// Machine owns the learner's selections and the current state.
//
// Every operation leaves the machine in a state whose prerequisites hold:
// a state missing a required selection falls back to StateLanguageSelect.
// Operations that do not apply to the current state are ignored.
//
// Each change of state, including re-entering the same state, advances
// Epoch. Asynchronous work records the epoch it started under and is
// discarded once that epoch is no longer current.
type Machine struct {
	state      State
	native     *language.Language
	target     *language.Language
	difficulty lessongen.Difficulty
	topic      *lessongen.Topic
	result     *Result
	epoch      uint64
}

// NewMachine returns a machine at the root state with nothing selected.
func NewMachine() *Machine {
	return &Machine{state: StateNativeLanguageSelect}
}

func (m *Machine) State() State                     { return m.state }
func (m *Machine) Native() *language.Language       { return m.native }
func (m *Machine) Target() *language.Language       { return m.target }
func (m *Machine) Difficulty() lessongen.Difficulty { return m.difficulty }
func (m *Machine) Topic() *lessongen.Topic          { return m.topic }
func (m *Machine) LastResult() *Result              { return m.result }
func (m *Machine) Epoch() uint64                    { return m.epoch }

// IsCurrent reports whether work started under epoch may still apply
// its result.
func (m *Machine) IsCurrent(epoch uint64) bool {
	return epoch == m.epoch
}

// SelectNative records the native language and moves to LanguageSelect.
func (m *Machine) SelectNative(l language.Language) State {
	if m.state != StateNativeLanguageSelect {
		return m.state
	}
	m.native = &l
	return m.enter(StateLanguageSelect)
}

// SelectTarget records the language to learn and moves to
// DifficultySelect.
func (m *Machine) SelectTarget(l language.Language) State {
	if m.state != StateLanguageSelect {
		return m.state
	}
	m.target = &l
	return m.enter(StateDifficultySelect)
}

// SelectDifficulty records the level and moves to LessonPlan.
func (m *Machine) SelectDifficulty(d lessongen.Difficulty) State {
	if m.state != StateDifficultySelect || !d.Valid() {
		return m.state
	}
	m.difficulty = d
	return m.enter(StateLessonPlan)
}

// SelectTopic records the topic and starts a lesson.
func (m *Machine) SelectTopic(t lessongen.Topic) State {
	if m.state != StateLessonPlan {
		return m.state
	}
	m.topic = &t
	m.result = nil
	return m.enter(StateLesson)
}

// CompleteLesson records the lesson outcome and shows the results.
func (m *Machine) CompleteLesson(r Result) State {
	if m.state != StateLesson {
		return m.state
	}
	m.result = &r
	return m.enter(StateResults)
}

// Back follows the single back edge of the current state, clearing what
// that state owned.
func (m *Machine) Back() State {
	switch m.state {
	case StateNativeLanguageSelect:
		return m.state
	case StateLanguageSelect:
		return m.Reset()
	case StateDifficultySelect:
		m.target = nil
		return m.enter(StateLanguageSelect)
	case StateLessonPlan:
		m.difficulty = ""
		m.topic = nil
		return m.enter(StateDifficultySelect)
	case StateLesson:
		m.topic = nil
		return m.enter(StateLessonPlan)
	case StateResults:
		return m.mainMenu()
	}
	return m.state
}

// PracticeAgain re-enters the lesson with the same topic and difficulty.
// The lesson screen requests fresh content. Without a complete selection
// it behaves like MainMenu.
func (m *Machine) PracticeAgain() State {
	if m.state != StateResults {
		return m.state
	}
	if m.native == nil || m.target == nil || !m.difficulty.Valid() || m.topic == nil {
		return m.mainMenu()
	}
	m.result = nil
	return m.enter(StateLesson)
}

// MainMenu leaves the results for LanguageSelect, keeping only the
// native language.
func (m *Machine) MainMenu() State {
	if m.state != StateResults {
		return m.state
	}
	return m.mainMenu()
}

func (m *Machine) mainMenu() State {
	m.target = nil
	m.difficulty = ""
	m.topic = nil
	m.result = nil
	return m.enter(StateLanguageSelect)
}

// Reset clears every selection and returns to the root state.
func (m *Machine) Reset() State {
	m.native = nil
	m.target = nil
	m.difficulty = ""
	m.topic = nil
	m.result = nil
	return m.enter(StateNativeLanguageSelect)
}

func (m *Machine) enter(s State) State {
	if !m.satisfied(s) {
		m.target = nil
		m.difficulty = ""
		m.topic = nil
		m.result = nil
		s = StateLanguageSelect
	}
	m.state = s
	m.epoch++
	return s
}

// satisfied reports whether the selections required by s are present.
func (m *Machine) satisfied(s State) bool {
	switch s {
	case StateDifficultySelect:
		return m.target != nil
	case StateLessonPlan:
		return m.target != nil && m.difficulty.Valid()
	case StateLesson:
		return m.native != nil && m.target != nil && m.difficulty.Valid() && m.topic != nil
	case StateResults:
		return m.result != nil
	default:
		return true
	}
}
