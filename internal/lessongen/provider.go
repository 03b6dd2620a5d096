package lessongen

import (
	"context"

	"github.com/abhisek/lingo/internal/language"
)

// Provider produces lesson content. Every call is independent and may be
// re-issued; implementations do not retry.
type Provider interface {
	// FetchLessonPlan returns Difficulty.TopicCount topics ordered by level.
	FetchLessonPlan(ctx context.Context, target language.Language, d Difficulty) ([]Topic, error)

	// FetchLesson returns a lesson for one topic.
	FetchLesson(ctx context.Context, req LessonRequest) (*Lesson, error)

	// FetchImage returns an illustration for an image-choice question.
	FetchImage(ctx context.Context, prompt string) (*Image, error)
}

// LessonRequest carries everything needed to generate one lesson.
type LessonRequest struct {
	Native     language.Language
	Target     language.Language
	Topic      Topic
	Difficulty Difficulty
}
