package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/store"
)

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LINGO_DB", "")

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lingo.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	repo := s.EventRepo()
	require.NoError(t, repo.AppendLesson(ctx, store.LessonEventData{
		RunID: "run-1", NativeLanguage: "English", TargetLanguage: "French", Difficulty: "Beginner",
		Topic: "Food", Level: 1, Score: 4, Total: 5, Answered: 5, LivesLeft: 4,
	}))
	require.NoError(t, repo.AppendAnswer(ctx, store.AnswerEventData{
		RunID: "run-1", QuestionIndex: 0, Kind: "image-choice",
		Prompt: "pomme", Expected: "pomme", Given: "pomme", Correct: true,
	}))
	require.NoError(t, repo.AppendAnswer(ctx, store.AnswerEventData{
		RunID: "run-1", QuestionIndex: 1, Kind: "sentence-construction",
		Prompt: "I eat an apple", Expected: "Je mange une pomme", Given: "Je mange pomme une",
	}))
	return path
}

func TestParseAnswer(t *testing.T) {
	lesson := lessongen.SampleLesson()
	image := lesson.Questions[0]
	sentence := lesson.Questions[4]

	a, err := parseAnswer(image, "2")
	require.NoError(t, err)
	assert.Equal(t, session.ChoiceAnswer("poire"), a)

	a, err = parseAnswer(image, "  POMME ")
	require.NoError(t, err)
	assert.Equal(t, session.ChoiceAnswer("pomme"), a)

	_, err = parseAnswer(image, "9")
	assert.ErrorContains(t, err, "choose 1-4")
	_, err = parseAnswer(image, "banane")
	assert.ErrorContains(t, err, "not one of the options")
	_, err = parseAnswer(image, "   ")
	assert.ErrorIs(t, err, errNoAnswer)

	a, err = parseAnswer(sentence, "le pain est bon!")
	require.NoError(t, err)
	assert.Equal(t, session.WordsAnswer{"Le", "pain", "est", "bon"}, a)

	_, err = parseAnswer(sentence, "hello world")
	assert.ErrorContains(t, err, "none of those words")
}

func TestPlayLesson(t *testing.T) {
	input := strings.Join([]string{
		"",      // rejected, asked again
		"1",     // pomme
		"2",     // pain
		"Je mange une pomme",
		"lait",  // wrong: fromage
		"Le pain est bon",
	}, "\n") + "\n"

	var out bytes.Buffer
	summary := playLesson(strings.NewReader(input), &out, lessongen.SampleLesson())

	assert.Equal(t, 4, summary.Score)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 80, summary.Percentage)
	assert.Equal(t, session.TierGoodJob, summary.Tier)

	text := out.String()
	assert.Contains(t, text, "── Question 1/5 ──")
	assert.Contains(t, text, errNoAnswer.Error())
	assert.Contains(t, text, "Answer: fromage")
	assert.Contains(t, text, "Words: mange · pomme · Je · bois · une · le")
}

func TestPlayLesson_InputClosed(t *testing.T) {
	var out bytes.Buffer
	summary := playLesson(strings.NewReader("pomme\n"), &out, lessongen.SampleLesson())

	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 5, summary.Total)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestHistory(t *testing.T) {
	db := seedDB(t)

	out, err := execute(t, "", "history", "--db", db, "--limit", "20", "--target", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "By Language")
	assert.Contains(t, out, "80% correct")

	out, err = execute(t, "", "history", "run-1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1. ✓ pomme")
	assert.Contains(t, out, "expected: Je mange une pomme")

	_, err = execute(t, "", "history", "missing", "--db", db)
	assert.ErrorContains(t, err, "no answers recorded")
}

func TestReset(t *testing.T) {
	db := seedDB(t)

	out, err := execute(t, "n\n", "reset", "--db", db, "--yes=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, "", "history", "--db", db, "--target", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Food")

	out, err = execute(t, "", "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All learner data deleted.")

	out, err = execute(t, "", "history", "--db", db, "--target", "")
	require.NoError(t, err)
	assert.Contains(t, out, "No lessons completed yet.")
}

func TestPreviewMock(t *testing.T) {
	input := "1\n2\nJe mange une pomme\n3\nLe pain est bon\n"
	out, err := execute(t, input, "preview", "--mock",
		"--native", "English", "--target", "French", "--difficulty", "beginner", "--topic", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Summary: 5/5 correct (100%) · Excellent work!")
}

func TestPreviewRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "", "preview", "--mock", "--native", "English", "--target", "Klingon", "--difficulty", "beginner")
	assert.ErrorContains(t, err, "unknown target language")

	_, err = execute(t, "", "preview", "--mock", "--native", "English", "--target", "English", "--difficulty", "beginner")
	assert.ErrorContains(t, err, "already speak")

	_, err = execute(t, "", "preview", "--mock", "--native", "English", "--target", "French", "--difficulty", "legendary")
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lingo "))
}

func TestLLMStats_CostsImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingo.db")
	s, err := store.Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	repo := s.EventRepo()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "gemini", Model: "gemini-flash-lite-latest", Purpose: "lesson",
		InputTokens: 1_000_000, LatencyMs: 500, Success: true,
	}))
	for range 2 {
		require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
			Provider: "gemini", Model: "imagen-4.0-generate-001", Purpose: "image",
			LatencyMs: 900, Success: true,
		}))
	}
	require.NoError(t, s.Close())

	out, err := execute(t, "", "llm", "stats", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imagen-4.0-generate-001")
	assert.Contains(t, out, "$0.08")
	assert.Contains(t, out, "$0.18")
	assert.NotContains(t, out, "(partial)")

	s, err = store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openrouter", Model: "someone/unpriced-model", Purpose: "lesson",
		InputTokens: 10, OutputTokens: 10, Success: true,
	}))
	require.NoError(t, s.Close())

	out, err = execute(t, "", "llm", "stats", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL (partial)")
}
