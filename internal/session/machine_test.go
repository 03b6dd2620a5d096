package session

import (
	"testing"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
)

var (
	english, _ = language.LookupNative("English")
	french, _  = language.LookupTarget("French")
	food       = lessongen.Topic{Title: "Food", Level: 1, Icon: "🍎"}
)

// toLesson drives a fresh machine to the lesson state.
func toLesson(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine()
	m.SelectNative(english)
	m.SelectTarget(french)
	m.SelectDifficulty(lessongen.Beginner)
	if got := m.SelectTopic(food); got != StateLesson {
		t.Fatalf("state = %v, want lesson", got)
	}
	return m
}

func TestMachine_ForwardPath(t *testing.T) {
	m := NewMachine()
	if m.State() != StateNativeLanguageSelect {
		t.Fatalf("initial state = %v", m.State())
	}

	steps := []struct {
		do   func() State
		want State
	}{
		{func() State { return m.SelectNative(english) }, StateLanguageSelect},
		{func() State { return m.SelectTarget(french) }, StateDifficultySelect},
		{func() State { return m.SelectDifficulty(lessongen.Intermediary) }, StateLessonPlan},
		{func() State { return m.SelectTopic(food) }, StateLesson},
		{func() State { return m.CompleteLesson(Result{Score: 4, Total: 5}) }, StateResults},
	}
	for i, s := range steps {
		if got := s.do(); got != s.want {
			t.Fatalf("step %d: state = %v, want %v", i, got, s.want)
		}
	}

	if m.Native().Name != "English" || m.Target().Name != "French" {
		t.Errorf("languages = %v/%v", m.Native(), m.Target())
	}
	if m.Difficulty() != lessongen.Intermediary {
		t.Errorf("difficulty = %q", m.Difficulty())
	}
	if r := m.LastResult(); r == nil || r.Score != 4 || r.Total != 5 {
		t.Errorf("result = %+v", r)
	}
}

func TestMachine_IgnoresOutOfStateOperations(t *testing.T) {
	m := NewMachine()
	if got := m.SelectTarget(french); got != StateNativeLanguageSelect {
		t.Errorf("SelectTarget at root moved to %v", got)
	}
	if got := m.CompleteLesson(Result{Score: 1, Total: 1}); got != StateNativeLanguageSelect {
		t.Errorf("CompleteLesson at root moved to %v", got)
	}
	if m.Target() != nil || m.LastResult() != nil {
		t.Error("ignored operations must not record selections")
	}

	m.SelectNative(english)
	if got := m.SelectDifficulty(lessongen.Beginner); got != StateLanguageSelect {
		t.Errorf("SelectDifficulty in language select moved to %v", got)
	}

	m.SelectTarget(french)
	if got := m.SelectDifficulty(lessongen.Difficulty("Legendary")); got != StateDifficultySelect {
		t.Errorf("unknown difficulty moved to %v", got)
	}
}

func TestMachine_BackEdges(t *testing.T) {
	m := toLesson(t)

	if got := m.Back(); got != StateLessonPlan {
		t.Fatalf("back from lesson = %v", got)
	}
	if m.Topic() != nil {
		t.Error("topic should be cleared leaving the lesson")
	}
	if m.Difficulty() != lessongen.Beginner {
		t.Error("difficulty should survive leaving the lesson")
	}

	if got := m.Back(); got != StateDifficultySelect {
		t.Fatalf("back from plan = %v", got)
	}
	if m.Difficulty() != "" {
		t.Error("difficulty should be cleared leaving the plan")
	}

	if got := m.Back(); got != StateLanguageSelect {
		t.Fatalf("back from difficulty = %v", got)
	}
	if m.Target() != nil {
		t.Error("target should be cleared leaving difficulty select")
	}

	if got := m.Back(); got != StateNativeLanguageSelect {
		t.Fatalf("back from language select = %v", got)
	}
	if m.Native() != nil {
		t.Error("native should be cleared at the root")
	}

	if got := m.Back(); got != StateNativeLanguageSelect {
		t.Fatalf("back at root = %v", got)
	}
}

func TestMachine_ResultsActions(t *testing.T) {
	m := toLesson(t)
	m.CompleteLesson(Result{Score: 2, Total: 5})

	if got := m.PracticeAgain(); got != StateLesson {
		t.Fatalf("practice again = %v", got)
	}
	if m.Topic() == nil || m.Topic().Title != "Food" {
		t.Error("practice again must keep the topic")
	}
	if m.LastResult() != nil {
		t.Error("practice again must clear the previous result")
	}

	m.CompleteLesson(Result{Score: 5, Total: 5})
	if got := m.MainMenu(); got != StateLanguageSelect {
		t.Fatalf("main menu = %v", got)
	}
	if m.Native() == nil {
		t.Error("main menu keeps the native language")
	}
	if m.Target() != nil || m.Difficulty() != "" || m.Topic() != nil || m.LastResult() != nil {
		t.Error("main menu clears everything but the native language")
	}

	m = toLesson(t)
	m.CompleteLesson(Result{})
	if got := m.Back(); got != StateLanguageSelect {
		t.Errorf("back from results = %v", got)
	}
}

func TestMachine_Reset(t *testing.T) {
	m := toLesson(t)
	if got := m.Reset(); got != StateNativeLanguageSelect {
		t.Fatalf("reset = %v", got)
	}
	if m.Native() != nil || m.Target() != nil || m.Topic() != nil {
		t.Error("reset must clear all selections")
	}
}

func TestMachine_MainMenuOnlyFromResults(t *testing.T) {
	m := NewMachine()
	epoch := m.Epoch()
	if got := m.MainMenu(); got != StateNativeLanguageSelect {
		t.Fatalf("main menu at the root = %v, want native language select", got)
	}
	if m.Epoch() != epoch {
		t.Error("ignored operation must not advance the epoch")
	}

	// The root still leads to a lesson afterwards.
	m.SelectNative(english)
	m.SelectTarget(french)
	m.SelectDifficulty(lessongen.Beginner)
	if got := m.SelectTopic(food); got != StateLesson {
		t.Fatalf("state = %v, want lesson", got)
	}

	if got := m.MainMenu(); got != StateLesson {
		t.Errorf("main menu during a lesson = %v, want lesson", got)
	}
	if m.Topic() == nil {
		t.Error("ignored main menu must keep the topic")
	}
}

func TestMachine_HealsMissingPrerequisites(t *testing.T) {
	// A plan without a native language cannot start a lesson.
	fr := french
	m := &Machine{state: StateLessonPlan, target: &fr, difficulty: lessongen.Beginner}

	if got := m.SelectTopic(food); got != StateLanguageSelect {
		t.Fatalf("state = %v, want language select", got)
	}
	if m.Target() != nil || m.Topic() != nil || m.Difficulty() != "" {
		t.Error("healing should clear partial selections")
	}
}

func TestMachine_Epoch(t *testing.T) {
	m := NewMachine()
	start := m.Epoch()

	m.SelectNative(english)
	if m.IsCurrent(start) {
		t.Fatal("epoch must advance on transition")
	}

	cur := m.Epoch()
	m.SelectDifficulty(lessongen.Beginner) // ignored
	if !m.IsCurrent(cur) {
		t.Error("ignored operation must not advance the epoch")
	}

	m = toLesson(t)
	m.CompleteLesson(Result{Total: 5})
	before := m.Epoch()
	m.PracticeAgain()
	m.CompleteLesson(Result{Total: 5})
	m.PracticeAgain()
	if m.Epoch() <= before+1 {
		t.Error("re-entering the lesson must advance the epoch each time")
	}
}
