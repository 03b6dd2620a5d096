package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/session"
)

func finished(t *testing.T, r session.Result) *session.Machine {
	t.Helper()
	m := session.NewMachine()
	english, _ := language.LookupNative("English")
	french, _ := language.LookupTarget("French")
	m.SelectNative(english)
	m.SelectTarget(french)
	m.SelectDifficulty(lessongen.Beginner)
	m.SelectTopic(lessongen.Topic{Title: "Food", Level: 1})
	require.Equal(t, session.StateResults, m.CompleteLesson(r))
	return m
}

func TestResults_Tiers(t *testing.T) {
	tests := []struct {
		result session.Result
		want   []string
	}{
		{session.Result{Score: 5, Total: 5}, []string{"Excellent work!", "100%", "5 of 5 correct"}},
		{session.Result{Score: 3, Total: 5}, []string{"Good job!", "60%"}},
		{session.Result{Score: 1, Total: 5}, []string{"Keep practicing!", "20%"}},
	}
	for _, tt := range tests {
		view := New(finished(t, tt.result)).View(80, 30)
		for _, want := range tt.want {
			assert.Contains(t, view, want)
		}
	}
}

func TestResults_Actions(t *testing.T) {
	s := New(finished(t, session.Result{Score: 4, Total: 5}))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.ActionPracticeAgain, cmd().(router.NavigateMsg).Action)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.ActionMainMenu, cmd().(router.NavigateMsg).Action)
}
