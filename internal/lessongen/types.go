package lessongen

import (
	"fmt"
	"strings"
)

// Difficulty selects the lesson-plan length and content level.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediary Difficulty = "Intermediary"
	Expert       Difficulty = "Expert"
)

// Difficulties returns all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediary, Expert}
}

// TopicCount is the number of topics in a lesson plan for this level.
// Unknown levels return 0.
func (d Difficulty) TopicCount() int {
	switch d {
	case Beginner:
		return 5
	case Intermediary:
		return 7
	case Expert:
		return 10
	default:
		return 0
	}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d.TopicCount() > 0
}

// Description is a one-line blurb shown next to the level.
func (d Difficulty) Description() string {
	switch d {
	case Beginner:
		return "First words and everyday phrases"
	case Intermediary:
		return "Longer sentences and common grammar"
	case Expert:
		return "Idioms, tenses and nuance"
	default:
		return ""
	}
}

// ParseDifficulty accepts a level name case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want Beginner, Intermediary or Expert)", s)
}

// Topic is one entry of a lesson plan.
type Topic struct {
	Title string
	Level int
	Icon  string
}

// QuestionKind discriminates the Question variants.
type QuestionKind string

const (
	KindImageChoice QuestionKind = "image-choice"
	KindSentence    QuestionKind = "sentence-construction"
)

// Question is either *ImageChoice or *Sentence.
type Question interface {
	Kind() QuestionKind

	// Prompt is the instruction shown above the exercise, in the
	// learner's native language.
	Prompt() string

	question()
}

// ImageChoice asks the learner to pick the word matching an illustration.
type ImageChoice struct {
	Title       string
	Word        string // the word being taught; equals Correct
	ImagePrompt string
	Options     []string
	Correct     string
}

func (*ImageChoice) Kind() QuestionKind { return KindImageChoice }
func (q *ImageChoice) Prompt() string   { return q.Title }
func (*ImageChoice) question()          {}

// Sentence asks the learner to translate a phrase by ordering words from
// a bank.
type Sentence struct {
	Title        string
	Phrase       string
	CorrectOrder []string
	WordBank     []string
}

func (*Sentence) Kind() QuestionKind { return KindSentence }
func (q *Sentence) Prompt() string   { return q.Title }
func (*Sentence) question()          {}

// Solution is the correct translation as a single string.
func (q *Sentence) Solution() string {
	return strings.Join(q.CorrectOrder, " ")
}

// Lesson is an ordered set of questions on one topic. It is not mutated
// after the generator returns it.
type Lesson struct {
	Title     string
	Questions []Question
}

// Len returns the number of questions.
func (l *Lesson) Len() int {
	return len(l.Questions)
}

// Image is a generated illustration.
type Image struct {
	Data     []byte
	MIMEType string
}
