package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestOpenFileDatabase.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lingo.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-flash-lite-latest", Purpose: "lesson-plan",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true,
		RequestBody: "[user]\nplan", ResponseBody: `{"topics":[]}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-flash-lite-latest", Purpose: "lesson",
		InputTokens: 200, OutputTokens: 150, LatencyMs: 500, Success: false, ErrorMessage: "boom",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "imagen-4.0-generate-001", Purpose: "image",
		LatencyMs: 900, Success: true,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "image", events[0].Purpose, "newest first")
	assert.False(t, events[0].Timestamp.IsZero())

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Purpose: "lesson"})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "boom", limited[0].ErrorMessage)
	assert.False(t, limited[0].Success)

	got, err := repo.GetLLMEvent(ctx, events[2].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nplan", got.RequestBody)
	assert.Equal(t, `{"topics":[]}`, got.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 3)
	// Ordered by purpose: image, lesson, lesson-plan.
	assert.Equal(t, "lesson", byPurpose[1].Purpose)
	assert.Equal(t, 200, byPurpose[1].InputTokens)
	assert.Equal(t, int64(500), byPurpose[1].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-flash-lite-latest", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
	assert.Equal(t, 300, byModel[0].InputTokens)
	assert.Equal(t, 200, byModel[0].OutputTokens)
}

func TestLessonEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	lessons := []LessonEventData{
		{RunID: "r1", NativeLanguage: "English", TargetLanguage: "French", Difficulty: "Beginner",
			Topic: "Food", Level: 1, Score: 5, Total: 5, Answered: 5, LivesLeft: 5},
		{RunID: "r2", NativeLanguage: "English", TargetLanguage: "French", Difficulty: "Beginner",
			Topic: "Animals", Level: 2, Score: 1, Total: 5, Answered: 5, LivesLeft: 0, EndedEarly: true},
		{RunID: "r3", NativeLanguage: "Portuguese", TargetLanguage: "Spanish", Difficulty: "Expert",
			Topic: "Subjunctive", Level: 1, Score: 3, Total: 5, Answered: 5, LivesLeft: 3},
	}
	for _, l := range lessons {
		require.NoError(t, repo.AppendLesson(ctx, l))
	}

	all, err := repo.QueryLessons(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "r3", all[0].RunID)

	french, err := repo.QueryLessons(ctx, QueryOpts{Target: "French"})
	require.NoError(t, err)
	require.Len(t, french, 2)
	assert.True(t, french[0].EndedEarly)

	recent, err := repo.QueryLessons(ctx, QueryOpts{From: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	future, err := repo.QueryLessons(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	stats, err := repo.StatsByLanguage(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, LanguageStats{TargetLanguage: "French", Lessons: 2, Score: 6, Total: 10, Perfect: 1}, stats[0])
	assert.Equal(t, "Spanish", stats[1].TargetLanguage)
}

func TestAnswerEventsAndPurge(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswer(ctx, AnswerEventData{
		RunID: "r1", QuestionIndex: 1, Kind: "sentence-construction",
		Prompt: "I eat apples", Expected: "Je mange des pommes", Given: "mange Je des pommes",
	}))
	require.NoError(t, repo.AppendAnswer(ctx, AnswerEventData{
		RunID: "r1", QuestionIndex: 0, Kind: "image-choice",
		Prompt: "pomme", Expected: "pomme", Given: "pomme", Correct: true,
	}))
	require.NoError(t, repo.AppendAnswer(ctx, AnswerEventData{RunID: "r2", Kind: "image-choice"}))

	answers, err := repo.QueryAnswers(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, 0, answers[0].QuestionIndex)
	assert.True(t, answers[0].Correct)
	assert.False(t, answers[1].Correct)

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "p", Success: true}))
	require.NoError(t, repo.AppendLesson(ctx, LessonEventData{RunID: "r1", Total: 5}))

	require.NoError(t, repo.Purge(ctx))

	answers, err = repo.QueryAnswers(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, answers)
	lessons, err := repo.QueryLessons(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, lessons)
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
}
