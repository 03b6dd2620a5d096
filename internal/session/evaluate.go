package session

import (
	"strings"

	"github.com/abhisek/lingo/internal/lessongen"
)

// Answer is a learner submission: ChoiceAnswer or WordsAnswer.
type Answer interface {
	// Text renders the answer for display and history.
	Text() string

	answer()
}

// ChoiceAnswer is the option picked for an image-choice question.
type ChoiceAnswer string

func (a ChoiceAnswer) Text() string { return string(a) }
func (ChoiceAnswer) answer()        {}

// WordsAnswer is the ordered word sequence built for a sentence question.
type WordsAnswer []string

func (a WordsAnswer) Text() string { return strings.Join(a, " ") }
func (WordsAnswer) answer()        {}

// Evaluate reports whether a answers q. Matching is exact: options are
// compared byte for byte and sentences must have the same words in the
// same order. An answer of the wrong variant is incorrect.
func Evaluate(q lessongen.Question, a Answer) bool {
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		c, ok := a.(ChoiceAnswer)
		return ok && string(c) == q.Correct
	case *lessongen.Sentence:
		w, ok := a.(WordsAnswer)
		return ok && w.Text() == q.Solution()
	default:
		return false
	}
}

// Empty reports whether a carries no selection.
func Empty(a Answer) bool {
	switch a := a.(type) {
	case nil:
		return true
	case ChoiceAnswer:
		return a == ""
	case WordsAnswer:
		return len(a) == 0
	default:
		return false
	}
}
