package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/llm"
	"github.com/abhisek/lingo/internal/logging"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/speech"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an LLM-generated lesson in plain text (no database)",
	Long: `Generate a lesson and answer it line by line on standard input.

This is a stateless developer tool: no database, no history, no images.
Useful for evaluating lesson quality across languages and difficulties.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("native", "English", "Language you speak")
	previewCmd.Flags().String("target", "French", "Language to learn")
	previewCmd.Flags().String("difficulty", string(lessongen.Beginner), "Beginner, Intermediary or Expert")
	previewCmd.Flags().String("topic", "", "Lesson topic (default: first topic of a generated plan)")
	previewCmd.Flags().Bool("mock", false, "Use a built-in sample lesson instead of calling an LLM")
}

func runPreview(cmd *cobra.Command, args []string) error {
	nativeVal, _ := cmd.Flags().GetString("native")
	targetVal, _ := cmd.Flags().GetString("target")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	topicVal, _ := cmd.Flags().GetString("topic")
	mock, _ := cmd.Flags().GetBool("mock")

	native, ok := language.LookupNative(nativeVal)
	if !ok {
		return fmt.Errorf("unknown native language %q (want one of %s)",
			nativeVal, strings.Join(language.Names(language.Natives()), ", "))
	}
	target, ok := language.LookupTarget(targetVal)
	if !ok {
		return fmt.Errorf("unknown target language %q (want one of %s)",
			targetVal, strings.Join(language.Names(language.Targets()), ", "))
	}
	if native.Name == target.Name {
		return fmt.Errorf("you already speak %s", native.Name)
	}
	difficulty, err := lessongen.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var provider lessongen.Provider
	if mock {
		provider = &lessongen.MockProvider{
			Plan:   []lessongen.Topic{{Title: "Food", Level: 1, Icon: "🍎"}},
			Lesson: lessongen.SampleLesson(),
		}
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// No EventRepo: request logging is skipped.
		text, err := llm.NewProvider(ctx, cfg.LLMConfig(), nil, logging.Discard())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		provider = lessongen.New(text, nil, lessongen.DefaultConfig(), logging.Discard())
	}

	topic := lessongen.Topic{Title: strings.TrimSpace(topicVal), Level: 1}
	if topic.Title == "" {
		fmt.Fprintf(out, "Building a %s %s plan...\n", difficulty, target.Name)
		topics, err := provider.FetchLessonPlan(ctx, target, difficulty)
		if err != nil {
			return err
		}
		for _, t := range topics {
			fmt.Fprintf(out, "  %2d. %s %s\n", t.Level, t.Icon, t.Title)
		}
		topic = topics[0]
	}

	fmt.Fprintf(out, "Generating a lesson on %q...\n\n", topic.Title)
	lesson, err := provider.FetchLesson(ctx, lessongen.LessonRequest{
		Native:     native,
		Target:     target,
		Topic:      topic,
		Difficulty: difficulty,
	})
	if err != nil {
		return err
	}

	summary := playLesson(cmd.InOrStdin(), out, lesson)
	fmt.Fprintf(out, "── Summary: %d/%d correct (%d%%) · %s ──\n",
		summary.Score, summary.Total, summary.Percentage, summary.Tier.Message())
	return nil
}

// playLesson runs a lesson over line-based input. Image questions take an
// option number or the word; sentence questions take the sentence, whose
// words are matched against the bank.
func playLesson(in io.Reader, out io.Writer, lesson *lessongen.Lesson) session.Summary {
	scanner := bufio.NewScanner(in)
	p := session.NewProgress(lesson)

	for {
		q := p.Current()
		if q == nil {
			break
		}
		fmt.Fprintf(out, "── Question %d/%d ── %s\n", p.Index()+1, p.Total(), hearts(p.Lives()))
		printQuestion(out, q)

		answer, closed := readAnswer(scanner, out, q)
		if closed {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		p.Select(answer)

		if status, _ := p.Check(); status == session.StatusCorrect {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Not quite.\033[0m Answer: %s\n", expected(q))
		}
		fmt.Fprintln(out)

		if _, done := p.Continue(); done {
			break
		}
	}

	result, done := p.Done()
	if !done {
		result = session.Result{Score: p.Score(), Total: p.Total()}
	}
	return session.Summarize(result)
}

func printQuestion(out io.Writer, q lessongen.Question) {
	fmt.Fprintln(out, q.Prompt())
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		fmt.Fprintf(out, "  [picture: %s]\n", q.ImagePrompt)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o)
		}
	case *lessongen.Sentence:
		fmt.Fprintf(out, "  %q\n", q.Phrase)
		fmt.Fprintf(out, "  Words: %s\n", strings.Join(q.WordBank, " · "))
	}
}

// readAnswer prompts until the input parses. closed reports end of input.
func readAnswer(scanner *bufio.Scanner, out io.Writer, q lessongen.Question) (session.Answer, bool) {
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			return nil, true
		}
		a, err := parseAnswer(q, scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		return a, false
	}
}

var errNoAnswer = errors.New("pick an answer first")

// parseAnswer turns a typed line into an answer for q.
func parseAnswer(q lessongen.Question, input string) (session.Answer, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errNoAnswer
	}

	switch q := q.(type) {
	case *lessongen.ImageChoice:
		if n, err := strconv.Atoi(input); err == nil {
			if n < 1 || n > len(q.Options) {
				return nil, fmt.Errorf("choose 1-%d", len(q.Options))
			}
			return session.ChoiceAnswer(q.Options[n-1]), nil
		}
		for _, o := range q.Options {
			if speech.Normalize(o) == speech.Normalize(input) {
				return session.ChoiceAnswer(o), nil
			}
		}
		return nil, fmt.Errorf("%q is not one of the options", input)
	case *lessongen.Sentence:
		words := speech.Words(q.WordBank, speech.MatchTranscript(input, q.WordBank))
		if len(words) == 0 {
			return nil, errors.New("none of those words are in the bank")
		}
		return session.WordsAnswer(words), nil
	default:
		return nil, fmt.Errorf("unsupported question kind %q", q.Kind())
	}
}

func expected(q lessongen.Question) string {
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		return q.Correct
	case *lessongen.Sentence:
		return q.Solution()
	default:
		return ""
	}
}

func hearts(n int) string {
	return strings.Repeat("♥", n) + strings.Repeat("♡", max(session.MaxLives-n, 0))
}
