package session

import (
	"testing"

	"github.com/abhisek/lingo/internal/lessongen"
)

// answerCorrectly returns the right answer for q.
func answerCorrectly(q lessongen.Question) Answer {
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		return ChoiceAnswer(q.Correct)
	case *lessongen.Sentence:
		return WordsAnswer(q.CorrectOrder)
	}
	return nil
}

// answerWrongly returns a wrong answer for q.
func answerWrongly(q lessongen.Question) Answer {
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		for _, o := range q.Options {
			if o != q.Correct {
				return ChoiceAnswer(o)
			}
		}
	case *lessongen.Sentence:
		words := append([]string(nil), q.CorrectOrder...)
		words[0], words[1] = words[1], words[0]
		return WordsAnswer(words)
	}
	return nil
}

func play(t *testing.T, p *Progress, pick func(lessongen.Question) Answer) Result {
	t.Helper()
	for i := 0; i < 100; i++ {
		q := p.Current()
		if q == nil {
			t.Fatal("no current question before the lesson ended")
		}
		p.Select(pick(q))
		if _, ok := p.Check(); !ok {
			t.Fatalf("check rejected at question %d", p.Index())
		}
		if r, done := p.Continue(); done {
			return r
		}
	}
	t.Fatal("lesson never ended")
	return Result{}
}

func TestProgress_PerfectRun(t *testing.T) {
	p := NewProgress(lessongen.SampleLesson())
	r := play(t, p, answerCorrectly)

	if r.Score != 5 || r.Total != 5 {
		t.Fatalf("result = %+v, want 5/5", r)
	}
	if p.Lives() != MaxLives {
		t.Errorf("lives = %d, want %d", p.Lives(), MaxLives)
	}

	s := Summarize(r)
	if s.Percentage != 100 || s.Tier != TierExcellent {
		t.Errorf("summary = %+v", s)
	}
}

func TestProgress_LivesExhausted(t *testing.T) {
	p := NewProgressWithLives(lessongen.SampleLesson(), 1)
	r := play(t, p, answerWrongly)

	if r.Score != 0 {
		t.Errorf("score = %d", r.Score)
	}
	if r.Total != 5 {
		t.Errorf("total = %d, want full lesson length", r.Total)
	}
	if p.Answered() != 1 {
		t.Errorf("answered = %d, want 1", p.Answered())
	}
	if p.Current() != nil {
		t.Error("no question should be current after the lesson ended")
	}
}

func TestProgress_WrongAnswersCostLives(t *testing.T) {
	p := NewProgress(lessongen.SampleLesson())
	r := play(t, p, answerWrongly)

	if r.Score != 0 || r.Total != 5 {
		t.Fatalf("result = %+v", r)
	}
	if p.Lives() != 0 {
		t.Errorf("lives = %d, want 0", p.Lives())
	}
}

func TestProgress_LivesClamped(t *testing.T) {
	if got := NewProgressWithLives(lessongen.SampleLesson(), 9).Lives(); got != MaxLives {
		t.Errorf("lives = %d, want %d", got, MaxLives)
	}
	if got := NewProgressWithLives(lessongen.SampleLesson(), -1).Lives(); got != 0 {
		t.Errorf("lives = %d, want 0", got)
	}
}

func TestProgress_SelectAndCheckGuards(t *testing.T) {
	p := NewProgress(lessongen.SampleLesson())

	if _, ok := p.Check(); ok {
		t.Fatal("check without a selection must be a no-op")
	}
	if p.Answered() != 0 {
		t.Fatal("no-op check must not count")
	}

	if _, done := p.Continue(); done || p.Index() != 0 {
		t.Fatal("continue before check must not advance")
	}

	p.Select(ChoiceAnswer("poire"))
	p.Select(ChoiceAnswer("pomme"))
	status, ok := p.Check()
	if !ok || status != StatusCorrect {
		t.Fatalf("check = %v, %v", status, ok)
	}

	if p.Select(ChoiceAnswer("poire")) {
		t.Error("select after check must be refused")
	}
	if _, ok := p.Check(); ok {
		t.Error("second check must be a no-op")
	}
	if p.Score() != 1 || p.Answered() != 1 {
		t.Errorf("score/answered = %d/%d", p.Score(), p.Answered())
	}

	p.Continue()
	if p.Index() != 1 || p.Status() != StatusUnanswered || p.Selected() != nil {
		t.Errorf("continue did not reset the question: index=%d status=%v", p.Index(), p.Status())
	}
	if got := p.Fraction(); got != 0.2 {
		t.Errorf("fraction = %v", got)
	}
}

func TestEvaluate(t *testing.T) {
	lesson := lessongen.SampleLesson()
	choice := lesson.Questions[0]
	sentence := lesson.Questions[2]

	tests := []struct {
		name string
		q    lessongen.Question
		a    Answer
		want bool
	}{
		{"choice correct", choice, ChoiceAnswer("pomme"), true},
		{"choice wrong", choice, ChoiceAnswer("poire"), false},
		{"choice case sensitive", choice, ChoiceAnswer("Pomme"), false},
		{"sentence correct", sentence, WordsAnswer{"Je", "mange", "une", "pomme"}, true},
		{"sentence order matters", sentence, WordsAnswer{"mange", "Je", "une", "pomme"}, false},
		{"sentence missing word", sentence, WordsAnswer{"Je", "mange", "pomme"}, false},
		{"wrong variant", choice, WordsAnswer{"pomme"}, false},
		{"nil answer", sentence, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.q, tt.a); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		result Result
		pct    int
		tier   Tier
	}{
		{Result{Score: 5, Total: 5}, 100, TierExcellent},
		{Result{Score: 9, Total: 11}, 82, TierExcellent},
		{Result{Score: 4, Total: 5}, 80, TierGoodJob},
		{Result{Score: 3, Total: 5}, 60, TierGoodJob},
		{Result{Score: 1, Total: 2}, 50, TierKeepPracticing},
		{Result{Score: 0, Total: 5}, 0, TierKeepPracticing},
		{Result{}, 0, TierKeepPracticing},
	}

	for _, tt := range tests {
		s := Summarize(tt.result)
		if s.Percentage != tt.pct || s.Tier != tt.tier {
			t.Errorf("Summarize(%+v) = %d%% %v, want %d%% %v",
				tt.result, s.Percentage, s.Tier, tt.pct, tt.tier)
		}
	}
	if TierExcellent.Message() == TierGoodJob.Message() {
		t.Error("tiers should have distinct messages")
	}
}
