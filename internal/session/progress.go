package session

import "github.com/abhisek/lingo/internal/lessongen"

// MaxLives is the number of hearts a lesson starts with.
const MaxLives = 5

// AnswerStatus is the check phase of the current question.
type AnswerStatus int

const (
	StatusUnanswered AnswerStatus = iota
	StatusChecking
	StatusCorrect
	StatusIncorrect
)

func (s AnswerStatus) String() string {
	switch s {
	case StatusUnanswered:
		return "unanswered"
	case StatusChecking:
		return "checking"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Progress tracks one run through a lesson.
type Progress struct {
	lesson   *lessongen.Lesson
	index    int
	score    int
	lives    int
	answered int
	selected Answer
	status   AnswerStatus
	done     bool
	result   Result
}

// NewProgress starts a lesson with MaxLives hearts.
func NewProgress(lesson *lessongen.Lesson) *Progress {
	return NewProgressWithLives(lesson, MaxLives)
}

// NewProgressWithLives starts a lesson with the given hearts, clamped to
// [0, MaxLives].
func NewProgressWithLives(lesson *lessongen.Lesson, lives int) *Progress {
	return &Progress{lesson: lesson, lives: min(max(lives, 0), MaxLives)}
}

func (p *Progress) Lesson() *lessongen.Lesson { return p.lesson }
func (p *Progress) Index() int                { return p.index }
func (p *Progress) Score() int                { return p.score }
func (p *Progress) Lives() int                { return p.lives }
func (p *Progress) Answered() int             { return p.answered }
func (p *Progress) Status() AnswerStatus      { return p.status }
func (p *Progress) Selected() Answer          { return p.selected }
func (p *Progress) Total() int                { return p.lesson.Len() }

// Done reports whether the lesson has ended, and with what result.
func (p *Progress) Done() (Result, bool) {
	return p.result, p.done
}

// Current returns the question being answered, or nil once done.
func (p *Progress) Current() lessongen.Question {
	if p.done || p.index >= p.lesson.Len() {
		return nil
	}
	return p.lesson.Questions[p.index]
}

// Fraction is the share of questions already answered, for progress bars.
func (p *Progress) Fraction() float64 {
	if p.Total() == 0 {
		return 0
	}
	return float64(p.answered) / float64(p.Total())
}

// Select replaces the pending answer. It is accepted only while the
// current question is unanswered.
func (p *Progress) Select(a Answer) bool {
	if p.done || p.status != StatusUnanswered {
		return false
	}
	p.selected = a
	return true
}

// Check evaluates the pending answer. It is a no-op unless the question
// is unanswered and an answer is selected.
func (p *Progress) Check() (AnswerStatus, bool) {
	if p.done || p.status != StatusUnanswered || Empty(p.selected) {
		return p.status, false
	}
	p.status = StatusChecking

	p.answered++
	if Evaluate(p.Current(), p.selected) {
		p.score++
		p.status = StatusCorrect
	} else {
		p.lives = max(p.lives-1, 0)
		p.status = StatusIncorrect
	}
	return p.status, true
}

// Continue moves past a checked question. The lesson ends when hearts ran
// out on an incorrect answer or the last question was checked; the result
// total is always the full lesson length.
func (p *Progress) Continue() (Result, bool) {
	if p.done {
		return p.result, true
	}
	if p.status != StatusCorrect && p.status != StatusIncorrect {
		return Result{}, false
	}

	if (p.status == StatusIncorrect && p.lives == 0) || p.index >= p.lesson.Len()-1 {
		p.done = true
		p.result = Result{Score: p.score, Total: p.lesson.Len()}
		return p.result, true
	}

	p.index++
	p.selected = nil
	p.status = StatusUnanswered
	return Result{}, false
}
